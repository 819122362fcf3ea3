// Package dberror defines the storage-layer error taxonomy. Every error the
// db package returns derives from ErrDatabase so callers can match broadly
// with errors.Is or narrowly against a specific failure.
package dberror

import (
	"net/http"

	"github.com/spooltrack/spooltrack/internal/common/apperrors"
)

var (
	ErrDatabase      apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrNotFound      apperrors.Error = ErrDatabase.New("not found").SetStatusCode(http.StatusNotFound)
	ErrAlreadyExists apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrForeignKey    apperrors.Error = ErrDatabase.New("referenced entity does not exist").SetStatusCode(http.StatusConflict)
	ErrInvalidInput  apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
)
