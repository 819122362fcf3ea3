package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
)

func TestMaterialCRUD(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	material := &models.Material{
		ID:          "test-pla",
		Name:        "Test PLA",
		Description: "Polylactic acid",
	}

	err := DB(ctx).CreateMaterial(ctx, material)
	assert.NoError(t, err)
	defer DB(ctx).DeleteMaterial(ctx, material.ID)

	// Duplicate id conflicts
	err = DB(ctx).CreateMaterial(ctx, material)
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	got, err := DB(ctx).GetMaterial(ctx, material.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test PLA", got.Name)
	assert.Equal(t, "Polylactic acid", got.Description)

	// Update name and clear the description
	material.Name = "Test PLA v2"
	material.Description = ""
	err = DB(ctx).UpdateMaterial(ctx, material)
	assert.NoError(t, err)

	got, err = DB(ctx).GetMaterial(ctx, material.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Test PLA v2", got.Name)
	assert.Equal(t, "", got.Description)

	err = DB(ctx).DeleteMaterial(ctx, material.ID)
	assert.NoError(t, err)

	got, err = DB(ctx).GetMaterial(ctx, material.ID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestMaterialWithoutDescription(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	material := &models.Material{
		ID:   "test-petg",
		Name: "Test PETG",
	}

	err := DB(ctx).CreateMaterial(ctx, material)
	assert.NoError(t, err)
	defer DB(ctx).DeleteMaterial(ctx, material.ID)

	// NULL description reads back as empty string
	got, err := DB(ctx).GetMaterial(ctx, material.ID)
	assert.NoError(t, err)
	assert.Equal(t, "", got.Description)
}

func TestListMaterials(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	materials := []*models.Material{
		{ID: "test-mat-a", Name: "Test Mat A"},
		{ID: "test-mat-b", Name: "Test Mat B"},
	}
	for _, m := range materials {
		err := DB(ctx).CreateMaterial(ctx, m)
		assert.NoError(t, err)
		defer DB(ctx).DeleteMaterial(ctx, m.ID)
	}

	listed, err := DB(ctx).ListMaterials(ctx)
	assert.NoError(t, err)

	var ours []*models.Material
	for _, m := range listed {
		if m.ID == "test-mat-a" || m.ID == "test-mat-b" {
			ours = append(ours, m)
		}
	}
	assert.Len(t, ours, 2)
	assert.Equal(t, "test-mat-a", ours[0].ID)
	assert.Equal(t, "test-mat-b", ours[1].ID)
}

func TestModifierCRUD(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	ctx = newDb(ctx)
	defer DB(ctx).Close(ctx)

	modifier := &models.Modifier{
		ID:     "test-carbon-fiber",
		Name:   "Test Carbon Fiber",
		Suffix: "CF",
	}

	err := DB(ctx).CreateModifier(ctx, modifier)
	assert.NoError(t, err)
	defer DB(ctx).DeleteModifier(ctx, modifier.ID)

	err = DB(ctx).CreateModifier(ctx, modifier)
	assert.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	got, err := DB(ctx).GetModifier(ctx, modifier.ID)
	assert.NoError(t, err)
	assert.Equal(t, "CF", got.Suffix)

	// Clear the suffix; a modifier without one collapses into the bare
	// material name in display formatting
	modifier.Suffix = ""
	err = DB(ctx).UpdateModifier(ctx, modifier)
	assert.NoError(t, err)

	got, err = DB(ctx).GetModifier(ctx, modifier.ID)
	assert.NoError(t, err)
	assert.Equal(t, "", got.Suffix)

	err = DB(ctx).DeleteModifier(ctx, modifier.ID)
	assert.NoError(t, err)

	got, err = DB(ctx).GetModifier(ctx, modifier.ID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}
