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

// materialSchema represents the structure of a material definition
type materialSchema struct {
	ID          string `json:"id" validate:"required,slugValidator"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

// Validate performs validation on the material schema
func (ms *materialSchema) Validate() schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	err := schemavalidator.V().Struct(ms)
	if err == nil {
		return validationErrors
	}

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, schemaerr.ErrValidationFailed("material"))
	}

	value := reflect.ValueOf(ms).Elem()
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
			maxLen := 50
			if jsonFieldName == "description" {
				maxLen = 500
			}
			validationErrors = append(validationErrors, schemaerr.ErrValueTooLong(jsonFieldName, maxLen))
		default:
			validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// CreateMaterial validates and persists a new material from JSON input.
func CreateMaterial(ctx context.Context, resourceJSON []byte) (*models.Material, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &materialSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	material := models.Material{
		ID:          schema.ID,
		Name:        schema.Name,
		Description: schema.Description,
	}

	if err := db.DB(ctx).CreateMaterial(ctx, &material); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.New("material already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to create material")
		return nil, err
	}

	return &material, nil
}

// UpdateMaterial validates and applies changes to an existing material.
func UpdateMaterial(ctx context.Context, id string, resourceJSON []byte) (*models.Material, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &materialSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}
	schema.ID = id

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	material := models.Material{
		ID:          schema.ID,
		Name:        schema.Name,
		Description: schema.Description,
	}

	if err := db.DB(ctx).UpdateMaterial(ctx, &material); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update material")
		return nil, err
	}

	stored, err := db.DB(ctx).GetMaterial(ctx, material.ID)
	if err != nil {
		return &material, nil
	}
	return stored, nil
}

// GetMaterial loads a material by id.
func GetMaterial(ctx context.Context, id string) (*models.Material, apperrors.Error) {
	material, err := db.DB(ctx).GetMaterial(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load material")
		return nil, err
	}
	return material, nil
}

// DeleteMaterial removes a material and, via cascade, its catalog colors.
func DeleteMaterial(ctx context.Context, id string) apperrors.Error {
	if err := db.DB(ctx).DeleteMaterial(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrMaterialNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete material")
		return err
	}
	return nil
}

// ListMaterials returns all materials in sort order.
func ListMaterials(ctx context.Context) ([]*models.Material, apperrors.Error) {
	materials, err := db.DB(ctx).ListMaterials(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list materials")
		return nil, err
	}
	return materials, nil
}
