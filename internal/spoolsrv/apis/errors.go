package apis

import (
	"net/http"

	"github.com/spooltrack/spooltrack/internal/common/apperrors"
	"github.com/spooltrack/spooltrack/internal/common/httpx"
	schemaerr "github.com/spooltrack/spooltrack/internal/spoolsrv/schema/errors"
)

// ToHTTPXError converts an application error to an HTTP error with appropriate status code and description.
// Validation failures additionally carry the per-field messages so clients
// can render inline feedback. Other errors pass through unchanged.
func ToHTTPXError(err error) error {
	appErr, ok := err.(apperrors.Error)
	if !ok {
		return err
	}

	statusCode := appErr.StatusCode()
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	httpErr := &httpx.Error{
		StatusCode:  statusCode,
		Description: appErr.ErrorAll(),
	}

	for _, wrapped := range appErr.UnwrapAll() {
		if ves, ok := wrapped.(schemaerr.ValidationErrors); ok {
			httpErr.Fields = ves.Map()
			break
		}
	}

	return httpErr
}
