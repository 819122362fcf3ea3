package apis

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/spooltrack/spooltrack/internal/common/httpx"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/config"
)

// readRequestBody reads the request body subject to the configured size
// limit.
func readRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, httpx.ErrInvalidRequest("request body is required")
	}

	r.Body = http.MaxBytesReader(nil, r.Body, config.Config().MaxRequestBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.Ctx(r.Context()).Error().Msgf("request body too large (limit: %d bytes)", maxErr.Limit)
			return nil, httpx.ErrRequestTooLarge(maxErr.Limit)
		}
		return nil, httpx.ErrUnableToParseReqData()
	}

	return body, nil
}

// uuidURLParam parses the named chi URL parameter as a UUID.
func uuidURLParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest("invalid id format")
	}
	return id, nil
}
