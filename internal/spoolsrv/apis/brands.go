package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/catalog"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db/models"
	"github.com/spooltrack/spooltrack/pkg/api"

	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

func toAPIBrand(b *models.Brand) *api.Brand {
	return &api.Brand{
		ID:        b.ID,
		Name:      b.Name,
		SortOrder: b.SortOrder,
	}
}

func createBrand(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	brand, apperr := catalog.CreateBrand(r.Context(), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/brands/" + brand.ID,
		Response:   toAPIBrand(brand),
	}, nil
}

func getBrand(r *http.Request) (*httpx.Response, error) {
	brand, apperr := catalog.GetBrand(r.Context(), chi.URLParam(r, "brandID"))
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIBrand(brand),
	}, nil
}

func updateBrand(r *http.Request) (*httpx.Response, error) {
	req, err := readRequestBody(r)
	if err != nil {
		return nil, err
	}

	brand, apperr := catalog.UpdateBrand(r.Context(), chi.URLParam(r, "brandID"), req)
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   toAPIBrand(brand),
	}, nil
}

func deleteBrand(r *http.Request) (*httpx.Response, error) {
	if apperr := catalog.DeleteBrand(r.Context(), chi.URLParam(r, "brandID")); apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	return &httpx.Response{
		StatusCode: http.StatusNoContent,
		Response:   nil,
	}, nil
}

func listBrands(r *http.Request) (*httpx.Response, error) {
	brands, apperr := catalog.ListBrands(r.Context())
	if apperr != nil {
		return nil, ToHTTPXError(apperr)
	}

	rsp := make([]*api.Brand, 0, len(brands))
	for _, b := range brands {
		rsp = append(rsp, toAPIBrand(b))
	}

	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   rsp,
	}, nil
}
