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

// modifierSchema represents the structure of a modifier definition.
// Suffix is the short display tag ("CF", "Silk") and may be empty.
type modifierSchema struct {
	ID     string `json:"id" validate:"required,slugValidator"`
	Name   string `json:"name" validate:"required,max=50"`
	Suffix string `json:"suffix" validate:"max=10"`
}

// Validate performs validation on the modifier schema
func (ms *modifierSchema) Validate() schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	err := schemavalidator.V().Struct(ms)
	if err == nil {
		return validationErrors
	}

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, schemaerr.ErrValidationFailed("modifier"))
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
			if jsonFieldName == "suffix" {
				maxLen = 10
			}
			validationErrors = append(validationErrors, schemaerr.ErrValueTooLong(jsonFieldName, maxLen))
		default:
			validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// CreateModifier validates and persists a new modifier from JSON input.
func CreateModifier(ctx context.Context, resourceJSON []byte) (*models.Modifier, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &modifierSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	modifier := models.Modifier{
		ID:     schema.ID,
		Name:   schema.Name,
		Suffix: schema.Suffix,
	}

	if err := db.DB(ctx).CreateModifier(ctx, &modifier); err != nil {
		if errors.Is(err, dberror.ErrAlreadyExists) {
			return nil, ErrAlreadyExists.New("modifier already exists")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to create modifier")
		return nil, err
	}

	return &modifier, nil
}

// UpdateModifier validates and applies changes to an existing modifier.
func UpdateModifier(ctx context.Context, id string, resourceJSON []byte) (*models.Modifier, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &modifierSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}
	schema.ID = id

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	modifier := models.Modifier{
		ID:     schema.ID,
		Name:   schema.Name,
		Suffix: schema.Suffix,
	}

	if err := db.DB(ctx).UpdateModifier(ctx, &modifier); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrModifierNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update modifier")
		return nil, err
	}

	stored, err := db.DB(ctx).GetModifier(ctx, modifier.ID)
	if err != nil {
		return &modifier, nil
	}
	return stored, nil
}

// GetModifier loads a modifier by id.
func GetModifier(ctx context.Context, id string) (*models.Modifier, apperrors.Error) {
	modifier, err := db.DB(ctx).GetModifier(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrModifierNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load modifier")
		return nil, err
	}
	return modifier, nil
}

// DeleteModifier removes a modifier and, via cascade, its catalog colors.
func DeleteModifier(ctx context.Context, id string) apperrors.Error {
	if err := db.DB(ctx).DeleteModifier(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrModifierNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete modifier")
		return err
	}
	return nil
}

// ListModifiers returns all modifiers in sort order.
func ListModifiers(ctx context.Context) ([]*models.Modifier, apperrors.Error) {
	modifiers, err := db.DB(ctx).ListModifiers(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list modifiers")
		return nil, err
	}
	return modifiers, nil
}
