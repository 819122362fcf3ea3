// Package spool implements the spool inventory lifecycle: create, read,
// update, and delete of physical spools. Brand and material are stored as
// free text snapshots so catalog edits never orphan existing spools.
package spool

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/config"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/dberror"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	schemaerr "github.com/spooltrack/spooltrack/internal/spoolsrv/schema/errors"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/schema/schemavalidator"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

// spoolSchema represents the structure of a spool definition. Status and
// initialWeight fall back to configured defaults when omitted.
type spoolSchema struct {
	Brand         string   `json:"brand" validate:"required,max=100"`
	Material      string   `json:"material" validate:"required,max=50"`
	Modifier      *string  `json:"modifier" validate:"omitempty,max=50"`
	ColorName     string   `json:"colorName" validate:"required,max=100"`
	ColorHex      string   `json:"colorHex" validate:"required,hexColor"`
	Status        string   `json:"status" validate:"omitempty,spoolStatus"`
	InitialWeight *int     `json:"initialWeight" validate:"omitempty,gt=0"`
	PurchaseDate  *string  `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Notes         *string  `json:"notes" validate:"omitempty,max=500"`
}

// spoolUpdateSchema is the partial-update form: nil fields are left
// unchanged. Optional fields are cleared by sending an empty string.
type spoolUpdateSchema struct {
	Brand         *string  `json:"brand" validate:"omitempty,min=1,max=100"`
	Material      *string  `json:"material" validate:"omitempty,min=1,max=50"`
	Modifier      *string  `json:"modifier" validate:"omitempty,max=50"`
	ColorName     *string  `json:"colorName" validate:"omitempty,min=1,max=100"`
	ColorHex      *string  `json:"colorHex" validate:"omitempty,hexColor"`
	Status        *string  `json:"status" validate:"omitempty,spoolStatus"`
	InitialWeight *int     `json:"initialWeight" validate:"omitempty,gt=0"`
	PurchaseDate  *string  `json:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Notes         *string  `json:"notes" validate:"omitempty,max=500"`
}

var fieldMaxLens = map[string]int{
	"brand":     100,
	"material":  50,
	"modifier":  50,
	"colorName": 100,
	"notes":     500,
}

func mapSpoolValidationErrors(target any, err error) schemaerr.ValidationErrors {
	var validationErrors schemaerr.ValidationErrors

	validatorErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(validationErrors, schemaerr.ErrValidationFailed("spool"))
	}

	value := reflect.ValueOf(target).Elem()
	typeOfSchema := value.Type()

	for _, e := range validatorErrors {
		jsonFieldName := schemavalidator.GetJSONFieldPath(value, typeOfSchema, e.StructField())

		switch e.Tag() {
		case "required", "min":
			validationErrors = append(validationErrors, schemaerr.ErrMissingRequiredAttribute(jsonFieldName))
		case "hexColor":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidHexColor(jsonFieldName, val))
		case "spoolStatus":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidStatus(jsonFieldName, val))
		case "gt":
			validationErrors = append(validationErrors, schemaerr.ErrNotPositive(jsonFieldName))
		case "datetime":
			val, _ := e.Value().(string)
			validationErrors = append(validationErrors, schemaerr.ErrInvalidDateFormat(jsonFieldName, val))
		case "max":
			maxLen := fieldMaxLens[jsonFieldName]
			validationErrors = append(validationErrors, schemaerr.ErrValueTooLong(jsonFieldName, maxLen))
		default:
			validationErrors = append(validationErrors, schemaerr.ErrValidationFailed(jsonFieldName))
		}
	}

	return validationErrors
}

// Validate performs validation on the spool schema
func (ss *spoolSchema) Validate() schemaerr.ValidationErrors {
	err := schemavalidator.V().Struct(ss)
	if err == nil {
		return nil
	}
	return mapSpoolValidationErrors(ss, err)
}

// Validate performs validation on the spool update schema
func (ss *spoolUpdateSchema) Validate() schemaerr.ValidationErrors {
	err := schemavalidator.V().Struct(ss)
	if err == nil {
		return nil
	}
	return mapSpoolValidationErrors(ss, err)
}

// emptyToNil normalizes an optional string: empty or absent becomes nil.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// CreateSpool validates and persists a new spool from JSON input.
func CreateSpool(ctx context.Context, resourceJSON []byte) (*models.Spool, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &spoolSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	status := spoolcommon.SpoolStatus(schema.Status)
	if schema.Status == "" {
		status = config.DefaultSpoolStatus()
	}

	initialWeight := config.DefaultInitialWeight()
	if schema.InitialWeight != nil {
		initialWeight = *schema.InitialWeight
	}

	s := models.Spool{
		Brand:         schema.Brand,
		Material:      schema.Material,
		Modifier:      emptyToNil(schema.Modifier),
		ColorName:     schema.ColorName,
		ColorHex:      schema.ColorHex,
		Status:        status,
		InitialWeight: initialWeight,
		PurchaseDate:  emptyToNil(schema.PurchaseDate),
		Price:         schema.Price,
		Notes:         emptyToNil(schema.Notes),
	}

	if err := db.DB(ctx).CreateSpool(ctx, &s); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to create spool")
		return nil, err
	}

	return &s, nil
}

// UpdateSpool merges the provided fields into the stored spool and persists
// the result. Fields absent from the input are left unchanged.
func UpdateSpool(ctx context.Context, id uuid.UUID, resourceJSON []byte) (*models.Spool, apperrors.Error) {
	if len(resourceJSON) == 0 {
		return nil, ErrInvalidSchema
	}

	schema := &spoolUpdateSchema{}
	if err := json.Unmarshal(resourceJSON, schema); err != nil {
		return nil, ErrInvalidSchema.Err(err)
	}

	if validationErrors := schema.Validate(); validationErrors != nil {
		return nil, ErrInvalidSchema.Err(validationErrors)
	}

	s, err := db.DB(ctx).GetSpool(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrSpoolNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load spool for update")
		return nil, err
	}

	if schema.Brand != nil {
		s.Brand = *schema.Brand
	}
	if schema.Material != nil {
		s.Material = *schema.Material
	}
	if schema.Modifier != nil {
		s.Modifier = emptyToNil(schema.Modifier)
	}
	if schema.ColorName != nil {
		s.ColorName = *schema.ColorName
	}
	if schema.ColorHex != nil {
		s.ColorHex = *schema.ColorHex
	}
	if schema.Status != nil {
		s.Status = spoolcommon.SpoolStatus(*schema.Status)
	}
	if schema.InitialWeight != nil {
		s.InitialWeight = *schema.InitialWeight
	}
	if schema.PurchaseDate != nil {
		s.PurchaseDate = emptyToNil(schema.PurchaseDate)
	}
	if schema.Price != nil {
		s.Price = schema.Price
	}
	if schema.Notes != nil {
		s.Notes = emptyToNil(schema.Notes)
	}

	if err := db.DB(ctx).UpdateSpool(ctx, s); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrSpoolNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to update spool")
		return nil, err
	}

	return s, nil
}

// GetSpool loads a spool by id.
func GetSpool(ctx context.Context, id uuid.UUID) (*models.Spool, apperrors.Error) {
	s, err := db.DB(ctx).GetSpool(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrSpoolNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to load spool")
		return nil, err
	}
	return s, nil
}

// DeleteSpool removes a spool. There is no soft delete.
func DeleteSpool(ctx context.Context, id uuid.UUID) apperrors.Error {
	if err := db.DB(ctx).DeleteSpool(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrSpoolNotFound
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete spool")
		return err
	}
	return nil
}

// ListSpools returns the full inventory, newest first.
func ListSpools(ctx context.Context) ([]*models.Spool, apperrors.Error) {
	spools, err := db.DB(ctx).ListSpools(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list spools")
		return nil, err
	}
	return spools, nil
}
