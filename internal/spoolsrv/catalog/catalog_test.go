package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
)

func TestBrandLifecycle(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	brand, err := CreateBrand(ctx, []byte(`{"id": "test-cat-polymaker", "name": "Polymaker"}`))
	require.NoError(t, err)
	defer db.DB(ctx).DeleteBrand(ctx, brand.ID)

	assert.Equal(t, "test-cat-polymaker", brand.ID)
	assert.Equal(t, "Polymaker", brand.Name)

	// duplicate id
	_, err = CreateBrand(ctx, []byte(`{"id": "test-cat-polymaker", "name": "Someone Else"}`))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// rename
	updated, err := UpdateBrand(ctx, brand.ID, []byte(`{"name": "Polymaker EU"}`))
	require.NoError(t, err)
	assert.Equal(t, "Polymaker EU", updated.Name)
	assert.Equal(t, brand.SortOrder, updated.SortOrder)

	got, err := GetBrand(ctx, brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Polymaker EU", got.Name)

	_, err = GetBrand(ctx, "test-cat-no-such-brand")
	assert.ErrorIs(t, err, ErrBrandNotFound)

	_, err = UpdateBrand(ctx, "test-cat-no-such-brand", []byte(`{"name": "Ghost"}`))
	assert.ErrorIs(t, err, ErrBrandNotFound)

	err = DeleteBrand(ctx, "test-cat-no-such-brand")
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestBrandValidation(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	tests := []struct {
		name string
		json string
	}{
		{"empty body", ``},
		{"missing name", `{"id": "test-cat-b"}`},
		{"missing id", `{"name": "Brand"}`},
		{"id not a slug", `{"id": "Not A Slug", "name": "Brand"}`},
		{"id with underscore", `{"id": "bad_slug", "name": "Brand"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateBrand(ctx, []byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestMaterialLifecycle(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	material, err := CreateMaterial(ctx, []byte(`{"id": "test-cat-pla", "name": "PLA", "description": "Easy to print"}`))
	require.NoError(t, err)
	defer db.DB(ctx).DeleteMaterial(ctx, material.ID)

	assert.Equal(t, "Easy to print", material.Description)

	// description is optional and clears on update when omitted
	updated, err := UpdateMaterial(ctx, material.ID, []byte(`{"name": "PLA"}`))
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)

	_, err = GetMaterial(ctx, "test-cat-no-such-material")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestModifierLifecycle(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	modifier, err := CreateModifier(ctx, []byte(`{"id": "test-cat-cf", "name": "Carbon Fiber", "suffix": "CF"}`))
	require.NoError(t, err)
	defer db.DB(ctx).DeleteModifier(ctx, modifier.ID)

	assert.Equal(t, "CF", modifier.Suffix)

	updated, err := UpdateModifier(ctx, modifier.ID, []byte(`{"name": "Carbon Fibre", "suffix": "CF"}`))
	require.NoError(t, err)
	assert.Equal(t, "Carbon Fibre", updated.Name)

	// suffix too long
	_, err = CreateModifier(ctx, []byte(`{"id": "test-cat-long", "name": "Long", "suffix": "MUCHTOOLONG"}`))
	assert.ErrorIs(t, err, ErrInvalidSchema)

	_, err = GetModifier(ctx, "test-cat-no-such-modifier")
	assert.ErrorIs(t, err, ErrModifierNotFound)
}

func seedGroup(ctx context.Context, t *testing.T) (brandID, materialID, modifierID string, cleanup func()) {
	t.Helper()

	brandID, materialID, modifierID = "test-cat-grp-brand", "test-cat-grp-pla", "test-cat-grp-silk"

	_, err := CreateBrand(ctx, []byte(`{"id": "`+brandID+`", "name": "Group Brand"}`))
	require.NoError(t, err)
	_, err = CreateMaterial(ctx, []byte(`{"id": "`+materialID+`", "name": "Group PLA"}`))
	require.NoError(t, err)
	_, err = CreateModifier(ctx, []byte(`{"id": "`+modifierID+`", "name": "Group Silk"}`))
	require.NoError(t, err)

	cleanup = func() {
		db.DB(ctx).DeleteBrand(ctx, brandID)
		db.DB(ctx).DeleteMaterial(ctx, materialID)
		db.DB(ctx).DeleteModifier(ctx, modifierID)
	}
	return
}

func TestColorLifecycle(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	brandID, materialID, modifierID, cleanup := seedGroup(ctx, t)
	defer cleanup()

	body := []byte(`{"brandId": "` + brandID + `", "materialId": "` + materialID + `", "modifierId": "` + modifierID + `", "colorName": "Candy Red", "colorHex": "#C41E3A"}`)
	color, err := CreateColor(ctx, body)
	require.NoError(t, err)
	defer db.DB(ctx).DeleteColor(ctx, color.ID)

	assert.NotEqual(t, uuid.Nil, color.ID)
	assert.Equal(t, 0, color.SortOrder)

	// group keys are immutable: updates only touch name and hex
	updated, err := UpdateColor(ctx, color.ID, []byte(`{"colorName": "Cherry Red", "colorHex": "#D2042D"}`))
	require.NoError(t, err)
	assert.Equal(t, "Cherry Red", updated.ColorName)
	assert.Equal(t, brandID, updated.BrandID)
	assert.Equal(t, color.SortOrder, updated.SortOrder)

	colors, err := ListColors(ctx, brandID, materialID, modifierID)
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "Cherry Red", colors[0].ColorName)

	modifiers, err := ListAvailableModifiers(ctx, brandID, materialID)
	require.NoError(t, err)
	assert.Equal(t, []string{modifierID}, modifiers)

	err = DeleteColor(ctx, color.ID)
	assert.NoError(t, err)
	_, err = GetColor(ctx, color.ID)
	assert.ErrorIs(t, err, ErrColorNotFound)
}

func TestColorUnknownGroup(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	body := []byte(`{"brandId": "test-cat-no-brand", "materialId": "test-cat-no-material", "modifierId": "test-cat-no-modifier", "colorName": "Ghost", "colorHex": "#EEEEEE"}`)
	_, err := CreateColor(ctx, body)
	assert.ErrorIs(t, err, ErrUnknownGroupID)
}

func TestColorEmptyPaletteFallsBackToFreeText(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	brandID, materialID, modifierID, cleanup := seedGroup(ctx, t)
	defer cleanup()

	// no colors curated for this combination: empty list, not an error
	colors, err := ListColors(ctx, brandID, materialID, modifierID)
	require.NoError(t, err)
	assert.Empty(t, colors)

	modifiers, err := ListAvailableModifiers(ctx, brandID, materialID)
	require.NoError(t, err)
	assert.Empty(t, modifiers)
}

func TestColorValidation(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	tests := []struct {
		name string
		json string
	}{
		{"missing group keys", `{"colorName": "Red", "colorHex": "#FF0000"}`},
		{"bad hex", `{"brandId": "b", "materialId": "m", "modifierId": "d", "colorName": "Red", "colorHex": "red"}`},
		{"missing name", `{"brandId": "b", "materialId": "m", "modifierId": "d", "colorHex": "#FF0000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateColor(ctx, []byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}
