package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/catalog"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/pkg/api"

	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

func toAPIMaterial(m *models.Material) *api.Material {
	return &api.Material{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		SortOrder:   m.SortOrder,
	}
}

func createMaterial(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	material, apperr := catalog.CreateMaterial(r.Context(), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/materials/" + material.ID,
		Response:   toAPIMaterial(material),
	}, nil
}

func getMaterial(r *http.Request) (*httpx.Response, error) {
	material, apperr := catalog.GetMaterial(r.Context(), chi.URLParam(r, "materialID"))
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIMaterial(material),
	}, nil
}

func updateMaterial(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	material, apperr := catalog.UpdateMaterial(r.Context(), chi.URLParam(r, "materialID"), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIMaterial(material),
	}, nil
}

func deleteMaterial(r *http.Request) (*httpx.Response, error) {
	if apperr := catalog.DeleteMaterial(r.Context(), chi.URLParam(r, "materialID")); apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}, nil
}

func listMaterials(r *http.Request) (*httpx.Response, error) {
	materials, apperr := catalog.ListMaterials(r.Context())
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	rsp := make([]*api.Material, 0, len(materials))
	for _, m := range materials {
		rsp = append(rsp, toAPIMaterial(m))
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}
