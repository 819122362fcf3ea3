package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/catalog"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/pkg/api"

	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

func toAPIModifier(m *models.Modifier) *api.Modifier {
	return &api.Modifier{
		ID:        m.ID,
		Name:      m.Name,
		Suffix:    m.Suffix,
		SortOrder: m.SortOrder,
	}
}

func createModifier(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	modifier, apperr := catalog.CreateModifier(r.Context(), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/modifiers/" + modifier.ID,
		Response:   toAPIModifier(modifier),
	}, nil
}

func getModifier(r *http.Request) (*httpx.Response, error) {
	modifier, apperr := catalog.GetModifier(r.Context(), chi.URLParam(r, "modifierID"))
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIModifier(modifier),
	}, nil
}

func updateModifier(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	modifier, apperr := catalog.UpdateModifier(r.Context(), chi.URLParam(r, "modifierID"), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIModifier(modifier),
	}, nil
}

func deleteModifier(r *http.Request) (*httpx.Response, error) {
	if apperr := catalog.DeleteModifier(r.Context(), chi.URLParam(r, "modifierID")); apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}, nil
}

func listModifiers(r *http.Request) (*httpx.Response, error) {
	modifiers, apperr := catalog.ListModifiers(r.Context())
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	rsp := make([]*api.Modifier, 0, len(modifiers))
	for _, m := range modifiers {
		rsp = append(rsp, toAPIModifier(m))
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

// listAvailableModifiers resolves which modifiers have curated colors for a
// brand and material. An empty list tells the client to offer all modifiers
// or fall back to free-text entry.
func listAvailableModifiers(r *http.Request) (*httpx.Response, error) {
	brandID := r.URL.Query().Get("brand")
	materialID := r.URL.Query().Get("material")
	if brandID == "" || materialID == "" {
		return nil, httpx.ErrInvalidRequest("brand and material query parameters are required")
	}

	modifierIDs, apperr := catalog.ListAvailableModifiers(r.Context(), brandID, materialID)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	if modifierIDs == nil {
		modifierIDs = []string{}
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   &api.AvailableModifiers{ModifierIDs: modifierIDs},
	}, nil
}
