package spool

import (
	"net/http"

	"github.com/spooltrack/spooltrack/internal/common/apperrors"
)

// Base spool error
var (
	ErrSpoolError apperrors.Error = apperrors.New("spool processing failed").SetStatusCode(http.StatusInternalServerError)
)

var (
	ErrSpoolNotFound apperrors.Error = ErrSpoolError.New("spool not found").SetStatusCode(http.StatusNotFound)
	ErrInvalidSchema apperrors.Error = ErrSpoolError.New("invalid spool definition").SetExpandError(true).SetStatusCode(http.StatusBadRequest)
	ErrInvalidID     apperrors.Error = ErrSpoolError.New("invalid spool id").SetStatusCode(http.StatusBadRequest)
)
