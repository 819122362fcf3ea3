// Package catalog implements the administrative catalog: brands, materials,
// modifiers, and the curated color palettes keyed by their combination.
// Writes assign sort orders at the storage layer; this package owns input
// validation and error mapping.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	schemaerr "github.com/spooltrack/spooltrack/internal/spoolsrv/schema/errors"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/schema/schemavalidator"
)

// brandSchema represents the structure of a brand definition
type brandSchema struct {
	ID   string `json:"id" validate:"required,slugValidator"`
	Name string `json:"name" validate:"required,max=100"`
}

// Validate performs validation on the brand schema
func (bs *brandSchema) Validate() schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	err := schemavalidator.V().Struct(bs)
	if err == nil {
		return validationErrors
	}

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, schemaerr.ErrValidationFailed("brand"))
	}

	value := reflect.ValueOf(bs).Elem()
	typeOfSchema := value.Type()

	for _, e := range validatorErrors {
		jsonFieldName := schemavalidator.GetJSONFieldPath(value, typeOfSchema, e.StructField())

		switch e.Tag() {
		case "required":
			validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
		case "slugValidator":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidSlugFormat(jsonFieldName, val))
		case "max":
			validationErrors = append(validationErrors, schemaerr.ErrValueTooLong(jsonFieldName, 100))
		default:
			validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// CreateBrand validates and persists a new brand from JSON input.
func CreateBrand(ctx context.Context, resourceJSON []byte) (*models.Brand, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &brandSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	brand := models.Brand{
		ID:   schema.ID,
		Name: schema.Name,
	}

	if err := db.DB(ctx).CreateBrand(ctx, &brand); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.New("brand already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to create brand")
		return nil, err
	}

	return &brand, nil
}

// UpdateBrand validates and applies a name change to an existing brand.
func UpdateBrand(ctx context.Context, id string, resourceJSON []byte) (*models.Brand, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &brandSchema{ID: id}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}
	schema.ID = id

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	brand := models.Brand{
		ID:   schema.ID,
		Name: schema.Name,
	}

	if err := db.DB(ctx).UpdateBrand(ctx, &brand); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrBrandNotFound
		}
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.New("brand name already in use")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update brand")
		return nil, err
	}

	// Re-read to pick up the stored sort order.
	stored, err := db.DB(ctx).GetBrand(ctx, brand.ID)
	if err != nil {
		return &brand, nil
	}
	return stored, nil
}

// GetBrand loads a brand by id.
func GetBrand(ctx context.Context, id string) (*models.Brand, apperrors.Error) {
	brand, err := db.DB(ctx).GetBrand(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrBrandNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load brand")
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand and, via cascade, its catalog colors.
func DeleteBrand(ctx context.Context, id string) apperrors.Error {
	if err := db.DB(ctx).DeleteBrand(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrBrandNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete brand")
		return err
	}
	return nil
}

// ListBrands returns all brands in sort order.
func ListBrands(ctx context.Context) ([]*models.Brand, apperrors.Error) {
	brands, err := db.DB(ctx).ListBrands(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list brands")
		return nil, err
	}
	return brands, nil
}
