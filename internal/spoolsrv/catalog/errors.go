package catalog

import (
	"net/http"

	"github.com/spooltrack/spooltrack/internal/common/apperrors"
)

// Base catalog error
var (
	ErrCatalogError apperrors.Error = apperrors.New("catalog processing failed").SetStatusCode(http.StatusInternalServerError)
)

// Not found errors
var (
	ErrBrandNotFound    apperrors.Error = ErrCatalogError.New("brand not found").SetStatusCode(http.StatusNotFound)
	ErrMaterialNotFound apperrors.Error = ErrCatalogError.New("material not found").SetStatusCode(http.StatusNotFound)
	ErrModifierNotFound apperrors.Error = ErrCatalogError.New("modifier not found").SetStatusCode(http.StatusNotFound)
	ErrColorNotFound    apperrors.Error = ErrCatalogError.New("catalog color not found").SetStatusCode(http.StatusNotFound)
)

// Conflict errors
var (
	ErrAlreadyExists  apperrors.Error = ErrCatalogError.New("entry already exists").SetStatusCode(http.StatusConflict)
	ErrUnknownGroupID apperrors.Error = ErrCatalogError.New("brand, material, or modifier does not exist").SetStatusCode(http.StatusConflict)
)

// Validation errors
var (
	ErrInvalidSchema apperrors.Error = ErrCatalogError.New("invalid entry definition").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidID     apperrors.Error = ErrCatalogError.New("invalid id").SetStatusCode(http.StatusBadRequest)
)
