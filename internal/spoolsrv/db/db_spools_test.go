package db

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCreateSpool(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	spool := &models.Spool{
		Brand:         "Prusament",
		Material:      "PLA",
		Modifier:      strPtr("Silk"),
		ColorName:     "Galaxy Black",
		ColorHex:      "#1A1A2E",
		Status:        spoolcommon.StatusSealed,
		InitialWeight: 1000,
		PurchaseDate:  strPtr("2026-08-01"),
		Price:         floatPtr(29.99),
		Notes:         strPtr("test spool"),
	}
	err := DB(ctx).CreateSpool(ctx, spool)
	assert.NoError(t, err)
	defer DB(ctx).DeleteSpool(ctx, spool.ID)

	assert.NotEqual(t, uuid.Nil, spool.ID)
	assert.False(t, spool.CreatedAt.IsZero())
	assert.False(t, spool.UpdatedAt.IsZero())

	got, err := DB(ctx).GetSpool(ctx, spool.ID)
	assert.NoError(t, err)
	assert.Equal(t, spool.Brand, got.Brand)
	assert.Equal(t, spool.Material, got.Material)
	if assert.NotNil(t, got.Modifier) {
		assert.Equal(t, "Silk", *got.Modifier)
	}
	assert.Equal(t, spool.ColorName, got.ColorName)
	assert.Equal(t, spool.ColorHex, got.ColorHex)
	assert.Equal(t, spoolcommon.StatusSealed, got.Status)
	assert.Equal(t, 1000, got.InitialWeight)
	if assert.NotNil(t, got.Price) {
		assert.Equal(t, 29.99, *got.Price)
	}
	if assert.NotNil(t, got.PurchaseDate) {
		assert.Equal(t, "2026-08-01", *got.PurchaseDate)
	}
	if assert.NotNil(t, got.Notes) {
		assert.Equal(t, "test spool", *got.Notes)
	}
}

func TestCreateSpoolMinimalFields(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	spool := &models.Spool{
		Brand:         "Generic",
		Material:      "PETG",
		ColorName:     "Clear",
		ColorHex:      "#FFFFFF",
		Status:        spoolcommon.StatusInUse,
		InitialWeight: 750,
	}
	err := DB(ctx).CreateSpool(ctx, spool)
	assert.NoError(t, err)
	defer DB(ctx).DeleteSpool(ctx, spool.ID)

	got, err := DB(ctx).GetSpool(ctx, spool.ID)
	assert.NoError(t, err)
	assert.Nil(t, got.Modifier)
	assert.Nil(t, got.PurchaseDate)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.Notes)
}

func TestCreateSpoolConstraintViolations(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	// bad hex
	spool := &models.Spool{
		Brand:         "Generic",
		Material:      "PLA",
		ColorName:     "Blue",
		ColorHex:      "blue",
		Status:        spoolcommon.StatusSealed,
		InitialWeight: 1000,
	}
	err := DB(ctx).CreateSpool(ctx, spool)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	// bad status
	spool = &models.Spool{
		Brand:         "Generic",
		Material:      "PLA",
		ColorName:     "Blue",
		ColorHex:      "#0000FF",
		Status:        spoolcommon.SpoolStatus("archived"),
		InitialWeight: 1000,
	}
	err = DB(ctx).CreateSpool(ctx, spool)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	// zero weight
	spool = &models.Spool{
		Brand:         "Generic",
		Material:      "PLA",
		ColorName:     "Blue",
		ColorHex:      "#0000FF",
		Status:        spoolcommon.StatusSealed,
		InitialWeight: 0,
	}
	err = DB(ctx).CreateSpool(ctx, spool)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestGetSpoolNotFound(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	_, err := DB(ctx).GetSpool(ctx, uuid.New())
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	_, err = DB(ctx).GetSpool(ctx, uuid.Nil)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestUpdateSpool(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	spool := &models.Spool{
		Brand:         "Prusament",
		Material:      "PLA",
		ColorName:     "Orange",
		ColorHex:      "#FF6600",
		Status:        spoolcommon.StatusSealed,
		InitialWeight: 1000,
	}
	err := DB(ctx).CreateSpool(ctx, spool)
	assert.NoError(t, err)
	defer DB(ctx).DeleteSpool(ctx, spool.ID)

	createdAt := spool.CreatedAt
	prevUpdatedAt := spool.UpdatedAt

	spool.Status = spoolcommon.StatusInUse
	spool.Notes = strPtr("loaded on MK4")
	spool.Price = floatPtr(24.99)
	err = DB(ctx).UpdateSpool(ctx, spool)
	assert.NoError(t, err)
	assert.True(t, spool.UpdatedAt.After(prevUpdatedAt) || spool.UpdatedAt.Equal(prevUpdatedAt))

	got, err := DB(ctx).GetSpool(ctx, spool.ID)
	assert.NoError(t, err)
	assert.Equal(t, spoolcommon.StatusInUse, got.Status)
	if assert.NotNil(t, got.Notes) {
		assert.Equal(t, "loaded on MK4", *got.Notes)
	}
	assert.True(t, got.CreatedAt.Equal(createdAt))

	// update of a missing spool
	missing := *got
	missing.ID = uuid.New()
	err = DB(ctx).UpdateSpool(ctx, &missing)
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	// constraint violations surface on update too
	got.ColorHex = "nothex"
	err = DB(ctx).UpdateSpool(ctx, got)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestDeleteSpool(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	spool := &models.Spool{
		Brand:         "Generic",
		Material:      "ABS",
		ColorName:     "Black",
		ColorHex:      "#000000",
		Status:        spoolcommon.StatusEmpty,
		InitialWeight: 500,
	}
	err := DB(ctx).CreateSpool(ctx, spool)
	assert.NoError(t, err)

	err = DB(ctx).DeleteSpool(ctx, spool.ID)
	assert.NoError(t, err)

	_, err = DB(ctx).GetSpool(ctx, spool.ID)
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	err = DB(ctx).DeleteSpool(ctx, spool.ID)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestListSpoolsOrder(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	var ids []uuid.UUID
	for i, name := range []string{"First", "Second", "Third"} {
		spool := &models.Spool{
			Brand:         "Generic",
			Material:      "PLA",
			ColorName:     name,
			ColorHex:      "#ABCDEF",
			Status:        spoolcommon.StatusSealed,
			InitialWeight: 100 + i,
		}
		err := DB(ctx).CreateSpool(ctx, spool)
		assert.NoError(t, err)
		ids = append(ids, spool.ID)
		defer DB(ctx).DeleteSpool(ctx, spool.ID)
		time.Sleep(5 * time.Millisecond)
	}

	spools, err := DB(ctx).ListSpools(ctx)
	assert.NoError(t, err)

	// newest first among the spools created here
	var mine []uuid.UUID
	for _, s := range spools {
		for _, id := range ids {
			if s.ID == id {
				mine = append(mine, s.ID)
			}
		}
	}
	if assert.Len(t, mine, 3) {
		assert.Equal(t, ids[2], mine[0])
		assert.Equal(t, ids[1], mine[1])
		assert.Equal(t, ids[0], mine[2])
	}
}
