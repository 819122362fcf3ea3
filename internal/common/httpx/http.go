// Package httpx provides HTTP request and response utilities: JSON request
// parsing, a uniform response envelope, error responses, and a wrapper that
// converts application errors into HTTP error responses at the handler
// boundary.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/apperrors"
)

// GetRequestData parses the JSON request body into data. Only POST and PUT
// carry bodies in this API.
func GetRequestData(r *http.Request, data any) error {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		return ErrReqMethodNotSupported()
	}
	if r.Body == nil {
		log.Ctx(r.Context()).Error().Msg("empty request body")
		return ErrUnableToParseReqData()
	}
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return ErrUnableToParseReqData()
	}
	return nil
}

// Response represents a handler result with status code and JSON payload.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

// RequestHandler is the handler shape used by the API layer. Returning an
// error produces a uniform failure envelope; returning a Response produces a
// success envelope.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a RequestHandler to http.HandlerFunc, converting
// apperrors and httpx errors into JSON error responses.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			SendAnyError(w, err)
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}
		var location []string
		if rsp.Location != "" {
			location = append(location, rsp.Location)
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
	})
}

// SendAnyError sends err as a JSON error response, picking the status code
// from the error when it carries one.
func SendAnyError(w http.ResponseWriter, err error) {
	if httperror, ok := err.(*Error); ok {
		httperror.Send(w)
		return
	}
	if appErr, ok := err.(apperrors.Error); ok {
		statusCode := appErr.StatusCode()
		if statusCode == 0 {
			statusCode = http.StatusInternalServerError
		}
		httperror := &Error{
			StatusCode:  statusCode,
			Description: appErr.ErrorAll(),
		}
		httperror.Send(w)
		return
	}
	ErrApplicationError(err.Error()).Send(w)
}
