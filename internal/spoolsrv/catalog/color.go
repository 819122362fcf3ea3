package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	schemaerr "github.com/spooltrack/spooltrack/internal/spoolsrv/schema/errors"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/schema/schemavalidator"
)

// colorSchema represents the structure of a catalog color definition.
// All three group keys are required; a color always belongs to exactly one
// (brand, material, modifier) combination.
type colorSchema struct {
	BrandID    string `json:"brandId" validate:"required,slugValidator"`
	MaterialID string `json:"materialId" validate:"required,slugValidator"`
	ModifierID string `json:"modifierId" validate:"required,slugValidator"`
	ColorName  string `json:"colorName" validate:"required,max=100"`
	ColorHex   string `json:"colorHex" validate:"required,hexColor"`
}

// colorUpdateSchema is the mutable subset of a catalog color. The group keys
// are immutable after creation.
type colorUpdateSchema struct {
	ColorName string `json:"colorName" validate:"required,max=100"`
	ColorHex  string `json:"colorHex" validate:"required,hexColor"`
}

func mapColorValidationErrors(target any, err error) schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, schemaerr.ErrValidationFailed("color"))
	}

	value := reflect.ValueOf(target).Elem()
	typeOfSchema := value.Type()

	for _, e := range validatorErrors {
		jsonFieldName := schemavalidator.GetJSONFieldPath(value, typeOfSchema, e.StructField())

		switch e.Tag() {
		case "required":
			validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
		case "slugValidator":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidSlugFormat(jsonFieldName, val))
		case "hexColor":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidHexColor(jsonFieldName, val))
		case "max":
			validationErrors = append(validationErrors, schemaerr.ErrValueTooLong(jsonFieldName, 100))
		default:
			validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// Validate performs validation on the color schema
func (cs *colorSchema) Validate() schemaerr.ValidationErrors {
	err := schemavalidator.V().Struct(cs)
	if err == nil {
		return nil
	}
	return mapColorValidationErrors(cs, err)
}

// Validate performs validation on the color update schema
func (cs *colorUpdateSchema) Validate() schemaerr.ValidationErrors {
	err := schemavalidator.V().Struct(cs)
	if err == nil {
		return nil
	}
	return mapColorValidationErrors(cs, err)
}

// CreateColor validates and persists a new catalog color from JSON input.
// The referenced brand, material, and modifier must already exist.
func CreateColor(ctx context.Context, resourceJSON []byte) (*models.CatalogColor, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &colorSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	color := models.CatalogColor{
		BrandID:    schema.BrandID,
		MaterialID: schema.MaterialID,
		ModifierID: schema.ModifierID,
		ColorName:  schema.ColorName,
		ColorHex:   schema.ColorHex,
	}

	if err := db.DB(ctx).CreateColor(ctx, &color); err != nil {
		if errors.Is(err, dberror.ErrForeignKey) {
			return nil, ErrUnknownGroupID
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to create catalog color")
		return nil, err
	}

	return &color, nil
}

// UpdateColor validates and applies name and hex changes to an existing
// catalog color.
func UpdateColor(ctx context.Context, id uuid.UUID, resourceJSON []byte) (*models.CatalogColor, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &colorUpdateSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	color := models.CatalogColor{
		ID:        id,
		ColorName: schema.ColorName,
		ColorHex:  schema.ColorHex,
	}

	if err := db.DB(ctx).UpdateColor(ctx, &color); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrColorNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update catalog color")
		return nil, err
	}

	stored, err := db.DB(ctx).GetColor(ctx, id)
	if err != nil {
		return &color, nil
	}
	return stored, nil
}

// GetColor loads a catalog color by id.
func GetColor(ctx context.Context, id uuid.UUID) (*models.CatalogColor, apperrors.Error) {
	color, err := db.DB(ctx).GetColor(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrColorNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load catalog color")
		return nil, err
	}
	return color, nil
}

// DeleteColor removes a catalog color.
func DeleteColor(ctx context.Context, id uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteColor(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrColorNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete catalog color")
		return err
	}
	return nil
}

// ListColors returns the curated palette for a (brand, material, modifier)
// combination, ordered by sort order. An empty slice means no preset palette
// exists and the caller should fall back to free-text color entry.
func ListColors(ctx context.Context, brandID, materialID, modifierID string) ([]*models.CatalogColor, apperrors.Error) {
	colors, err := db.DB(ctx).ListColors(ctx, brandID, materialID, modifierID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list catalog colors")
		return nil, err
	}
	return colors, nil
}

// ListAvailableModifiers returns the distinct modifier ids with at least one
// catalog color for the given brand and material. An empty slice means the
// combination has no curated catalog; callers should then offer all known
// modifiers rather than an empty choice.
func ListAvailableModifiers(ctx context.Context, brandID, materialID string) ([]string, apperrors.Error) {
	modifierIDs, err := db.DB(ctx).ListAvailableModifiers(ctx, brandID, materialID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list available modifiers")
		return nil, err
	}
	return modifierIDs, nil
}
