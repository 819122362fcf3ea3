package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spooltrack/spooltrack/internal/common/httpx"
)

type routeHandlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

// routeHandlers defines the API routes. Static segments (facets, available)
// are registered alongside the parameterized ones; chi gives them priority.
var routeHandlers = []routeHandlerParam{
	// Brands
	{Method: http.MethodPost, Path: "/brands", Handler: createBrand},
	{Method: http.MethodGet, Path: "/brands", Handler: listBrands},
	{Method: http.MethodGet, Path: "/brands/{brandID}", Handler: getBrand},
	{Method: http.MethodPut, Path: "/brands/{brandID}", Handler: updateBrand},
	{Method: http.MethodDelete, Path: "/brands/{brandID}", Handler: deleteBrand},

	// Materials
	{Method: http.MethodPost, Path: "/materials", Handler: createMaterial},
	{Method: http.MethodGet, Path: "/materials", Handler: listMaterials},
	{Method: http.MethodGet, Path: "/materials/{materialID}", Handler: getMaterial},
	{Method: http.MethodPut, Path: "/materials/{materialID}", Handler: updateMaterial},
	{Method: http.MethodDelete, Path: "/materials/{materialID}", Handler: deleteMaterial},

	// Modifiers
	{Method: http.MethodPost, Path: "/modifiers", Handler: createModifier},
	{Method: http.MethodGet, Path: "/modifiers", Handler: listModifiers},
	{Method: http.MethodGet, Path: "/modifiers/available", Handler: listAvailableModifiers},
	{Method: http.MethodGet, Path: "/modifiers/{modifierID}", Handler: getModifier},
	{Method: http.MethodPut, Path: "/modifiers/{modifierID}", Handler: updateModifier},
	{Method: http.MethodDelete, Path: "/modifiers/{modifierID}", Handler: deleteModifier},

	// Catalog colors
	{Method: http.MethodPost, Path: "/colors", Handler: createColor},
	{Method: http.MethodGet, Path: "/colors", Handler: listColors},
	{Method: http.MethodGet, Path: "/colors/{colorID}", Handler: getColor},
	{Method: http.MethodPut, Path: "/colors/{colorID}", Handler: updateColor},
	{Method: http.MethodDelete, Path: "/colors/{colorID}", Handler: deleteColor},

	// Spools
	{Method: http.MethodPost, Path: "/spools", Handler: createSpool},
	{Method: http.MethodGet, Path: "/spools", Handler: listSpools},
	{Method: http.MethodGet, Path: "/spools/facets", Handler: getSpoolFacets},
	{Method: http.MethodGet, Path: "/spools/{spoolID}", Handler: getSpool},
	{Method: http.MethodPut, Path: "/spools/{spoolID}", Handler: updateSpool},
	{Method: http.MethodDelete, Path: "/spools/{spoolID}", Handler: deleteSpool},
}

// Router registers the API handlers on the given router.
func Router(r chi.Router) chi.Router {
	for _, handler := range routeHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
	return r
}
