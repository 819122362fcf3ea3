package apis

import (
	"net/http"

	"github.com/spooltrack/spooltrack/internal/spoolsrv/catalog"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/pkg/api"

	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

func toAPIColor(c *models.CatalogColor) *api.CatalogColor {
	return &api.CatalogColor{
		ID:         c.ID.String(),
		BrandID:    c.BrandID,
		MaterialID: c.MaterialID,
		ModifierID: c.ModifierID,
		ColorName:  c.ColorName,
		ColorHex:   c.ColorHex,
		SortOrder:  c.SortOrder,
	}
}

func createColor(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	color, apperr := catalog.CreateColor(r.Context(), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/colors/" + color.ID.String(),
		Response:   toAPIColor(color),
	}, nil
}

func getColor(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "colorID")
	if err != nil {
		return nil, err
	}

	color, apperr := catalog.GetColor(r.Context(), id)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIColor(color),
	}, nil
}

func updateColor(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "colorID")
	if err != nil {
		return nil, err
	}

	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	color, apperr := catalog.UpdateColor(r.Context(), id, req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIColor(color),
	}, nil
}

func deleteColor(r *http.Request) (*httpx.Response, error) {
	id, err := uuidURLParam(r, "colorID")
	if err != nil {
		return nil, err
	}

	if apperr := catalog.DeleteColor(r.Context(), id); apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}, nil
}

// listColors returns the ordered palette for a (brand, material, modifier)
// combination. An empty array signals "no preset palette".
func listColors(r *http.Request) (*httpx.Response, error) {
	q := r.URL.Query()
	brandID := q.Get("brand")
	materialID := q.Get("material")
	modifierID := q.Get("modifier")
	if brandID == "" || materialID == "" || modifierID == "" {
		return nil, httpx.ErrInvalidRequest("brand, material, and modifier query parameters are required")
	}

	colors, apperr := catalog.ListColors(r.Context(), brandID, materialID, modifierID)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	rsp := make([]*api.CatalogColor, 0, len(colors))
	for _, c := range colors {
		rsp = append(rsp, toAPIColor(c))
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}
