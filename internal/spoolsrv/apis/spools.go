package apis

import (
	"net/http"
	"time"

	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/display"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/listview"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spool"
	"github.com/spooltrack/spooltrack/pkg/api"

	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

func toAPISpool(s *models.Spool) *api.Spool {
	modifier := ""
	if s.Modifier != nil {
		modifier = *s.Modifier
	}
	return &api.Spool{
		ID:              s.ID.String(),
		Brand:           s.Brand,
		Material:        s.Material,
		Modifier:        s.Modifier,
		ColorName:       s.ColorName,
		ColorHex:        s.ColorHex,
		Status:          s.Status.String(),
		InitialWeight:   s.InitialWeight,
		PurchaseDate:    s.PurchaseDate,
		Price:           s.Price,
		Notes:           s.Notes,
		MaterialDisplay: display.MaterialDisplay(s.Material, modifier),
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func createSpool(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	s, apperr := spool.CreateSpool(r.Context(), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/spools/" + s.ID.String(),
		Response:   toAPISpool(s),
	}, nil
}

func getSpool(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "spoolID")
	if err != nil {
		return nil, err
	}

	s, apperr := spool.GetSpool(r.Context(), id)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPISpool(s),
	}, nil
}

func updateSpool(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "spoolID")
	if err != nil {
		return nil, err
	}

	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	s, apperr := spool.UpdateSpool(r.Context(), id, req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPISpool(s),
	}, nil
}

func deleteSpool(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "spoolID")
	if err != nil {
		return nil, err
	}

	if apperr := spool.DeleteSpool(r.Context(), id); apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}, nil
}

// listSpools returns the inventory filtered and sorted per query params.
// Without params the order is newest first.
func listSpools(r *http.Request) (*httpx.Response, error) {
	spools, apperr := spool.ListSpools(r.Context())
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	q := r.URL.Query()
	filter := listview.Filter{
		Status:   q.Get("status"),
		Brand:    q.Get("brand"),
		Material: q.Get("material"),
		Modifier: q.Get("modifier"),
	}

	key := listview.SortKey(q.Get("sort"))
	if key != "" && !key.IsValid() {
		return nil, httpx.ErrInvalidRequest("unknown sort key")
	}

	view := listview.Apply(spools, filter, key)

	rsp := make([]*api.Spool, 0, len(view))
	for _, s := range view {
		rsp = append(rsp, toAPISpool(s))
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}

// getSpoolFacets derives the filterable values from the full inventory.
func getSpoolFacets(r *http.Request) (*httpx.Response, error) {
	spools, apperr := spool.ListSpools(r.Context())
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	facets := listview.DeriveFacets(spools)

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &api.SpoolFacets{
			Brands:    facets.Brands,
			Materials: facets.Materials,
			Modifiers: facets.Modifiers,
		},
	}, nil
}
