package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
	"github.com/spooltrack/spooltrack/pkg/api"
)

func TestBrandCRUD(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)
	defer db.DB(ctx).DeleteBrand(ctx, "test-srv-prusament")

	// Create
	req, _ := http.NewRequest("POST", "/brands", nil)
	setRequestBodyAndHeader(t, req, `{"id": "test-srv-prusament", "name": "Prusament"}`)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)
	checkHeader(t, response.Result().Header)
	assert.Equal(t, "/brands/test-srv-prusament", response.Result().Header.Get("Location"))

	var brand api.Brand
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &brand))
	assert.Equal(t, "Prusament", brand.Name)

	// Duplicate create conflicts
	req, _ = http.NewRequest("POST", "/brands", nil)
	setRequestBodyAndHeader(t, req, `{"id": "test-srv-prusament", "name": "Prusament"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusConflict, response.Code)

	// Get
	req, _ = http.NewRequest("GET", "/brands/test-srv-prusament", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	// Update
	req, _ = http.NewRequest("PUT", "/brands/test-srv-prusament", nil)
	setRequestBodyAndHeader(t, req, `{"name": "Prusament by Prusa"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &brand))
	assert.Equal(t, "Prusament by Prusa", brand.Name)

	// List contains the brand
	req, _ = http.NewRequest("GET", "/brands", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)
	var brands []api.Brand
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &brands))
	found := false
	for _, b := range brands {
		if b.ID == "test-srv-prusament" {
			found = true
		}
	}
	assert.True(t, found)

	// Delete
	req, _ = http.NewRequest("DELETE", "/brands/test-srv-prusament", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNoContent, response.Code)

	// Gone
	req, _ = http.NewRequest("GET", "/brands/test-srv-prusament", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, response.Code)
}

func TestBrandValidationErrorFields(t *testing.T) {
	newDb()

	req, _ := http.NewRequest("POST", "/brands", nil)
	setRequestBodyAndHeader(t, req, `{"id": "Not A Slug"}`)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, response.Code)

	var rsp struct {
		Result int               `json:"result"`
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &rsp))
	assert.Equal(t, 0, rsp.Result)
	assert.NotEmpty(t, rsp.Error)
	assert.Contains(t, rsp.Fields, "id")
	assert.Contains(t, rsp.Fields, "name")
}

func TestColorCRUD(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)
	defer db.DB(ctx).DeleteBrand(ctx, "test-srv-bambu")
	defer db.DB(ctx).DeleteMaterial(ctx, "test-srv-pla")
	defer db.DB(ctx).DeleteModifier(ctx, "test-srv-matte")

	// Seed the group over the API
	req, _ := http.NewRequest("POST", "/brands", nil)
	setRequestBodyAndHeader(t, req, `{"id": "test-srv-bambu", "name": "Bambu Lab"}`)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	req, _ = http.NewRequest("POST", "/materials", nil)
	setRequestBodyAndHeader(t, req, `{"id": "test-srv-pla", "name": "PLA", "description": "Easy to print"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	req, _ = http.NewRequest("POST", "/modifiers", nil)
	setRequestBodyAndHeader(t, req, `{"id": "test-srv-matte", "name": "Matte", "suffix": "Matte"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	// Create two colors in the group
	body := `{"brandId": "test-srv-bambu", "materialId": "test-srv-pla", "modifierId": "test-srv-matte", "colorName": "Charcoal", "colorHex": "#333333"}`
	req, _ = http.NewRequest("POST", "/colors", nil)
	setRequestBodyAndHeader(t, req, body)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	var first api.CatalogColor
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &first))
	assert.Equal(t, 0, first.SortOrder)
	assert.Equal(t, "/colors/"+first.ID, response.Result().Header.Get("Location"))

	body = `{"brandId": "test-srv-bambu", "materialId": "test-srv-pla", "modifierId": "test-srv-matte", "colorName": "Ivory White", "colorHex": "#FFFFF0"}`
	req, _ = http.NewRequest("POST", "/colors", nil)
	setRequestBodyAndHeader(t, req, body)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	var second api.CatalogColor
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &second))
	assert.Equal(t, 1, second.SortOrder)

	// Unknown group conflicts
	body = `{"brandId": "test-srv-bambu", "materialId": "test-srv-pla", "modifierId": "test-srv-no-such", "colorName": "Ghost", "colorHex": "#EEEEEE"}`
	req, _ = http.NewRequest("POST", "/colors", nil)
	setRequestBodyAndHeader(t, req, body)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusConflict, response.Code)

	// List preserves curated order
	req, _ = http.NewRequest("GET", "/colors?brand=test-srv-bambu&material=test-srv-pla&modifier=test-srv-matte", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	var colors []api.CatalogColor
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &colors))
	require.Len(t, colors, 2)
	assert.Equal(t, "Charcoal", colors[0].ColorName)
	assert.Equal(t, "Ivory White", colors[1].ColorName)

	// Available modifiers for the brand and material
	req, _ = http.NewRequest("GET", "/modifiers/available?brand=test-srv-bambu&material=test-srv-pla", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)
	var available api.AvailableModifiers
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &available))
	assert.Equal(t, []string{"test-srv-matte"}, available.ModifierIDs)

	// Update renames without reordering
	req, _ = http.NewRequest("PUT", "/colors/"+first.ID, nil)
	setRequestBodyAndHeader(t, req, `{"colorName": "Charcoal Black", "colorHex": "#2F2F2F"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	var updated api.CatalogColor
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &updated))
	assert.Equal(t, "Charcoal Black", updated.ColorName)
	assert.Equal(t, 0, updated.SortOrder)

	// Deleting the brand cascades to its colors
	req, _ = http.NewRequest("DELETE", "/brands/test-srv-bambu", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNoContent, response.Code)

	req, _ = http.NewRequest("GET", "/colors/"+first.ID, nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, response.Code)
}
