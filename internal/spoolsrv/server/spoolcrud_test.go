package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/spooltrack/spooltrack/internal/common/uuid"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/db"
	"github.com/spooltrack/spooltrack/pkg/api"
)

func createTestSpool(t *testing.T, body string) api.Spool {
	t.Helper()

	req, _ := http.NewRequest("POST", "/spools", nil)
	setRequestBodyAndHeader(t, req, body)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, response.Code)

	var s api.Spool
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &s))
	return s
}

func deleteTestSpool(ctx context.Context, id string) {
	if parsed, err := uuid.Parse(id); err == nil {
		db.DB(ctx).DeleteSpool(ctx, parsed)
	}
}

func TestSpoolCRUD(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	s := createTestSpool(t, `{
		"brand": "test-srv-prusament",
		"material": "pla",
		"modifier": "carbon-fiber",
		"colorName": "Jet Black",
		"colorHex": "#0A0A0A",
		"status": "sealed",
		"initialWeight": 800,
		"price": 34.99
	}`)
	defer deleteTestSpool(ctx, s.ID)

	assert.Equal(t, "PLA-CF", s.MaterialDisplay)
	assert.Equal(t, "sealed", s.Status)
	assert.NotEmpty(t, s.CreatedAt)

	// Get
	req, _ := http.NewRequest("GET", "/spools/"+s.ID, nil)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)
	checkHeader(t, response.Result().Header)

	// Partial update: only the status changes
	req, _ = http.NewRequest("PUT", "/spools/"+s.ID, nil)
	setRequestBodyAndHeader(t, req, `{"status": "in_use"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	var updated api.Spool
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &updated))
	assert.Equal(t, "in_use", updated.Status)
	assert.Equal(t, "Jet Black", updated.ColorName)
	assert.Equal(t, 800, updated.InitialWeight)

	// Validation failure carries field messages
	req, _ = http.NewRequest("PUT", "/spools/"+s.ID, nil)
	setRequestBodyAndHeader(t, req, `{"colorHex": "black"}`)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, response.Code)

	var errRsp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &errRsp))
	assert.Contains(t, errRsp.Fields, "colorHex")

	// Delete
	req, _ = http.NewRequest("DELETE", "/spools/"+s.ID, nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNoContent, response.Code)

	req, _ = http.NewRequest("GET", "/spools/"+s.ID, nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, response.Code)
}

func TestSpoolBadID(t *testing.T) {
	newDb()

	req, _ := http.NewRequest("GET", "/spools/not-a-uuid", nil)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, response.Code)
}

func TestSpoolListFiltersAndSort(t *testing.T) {
	ctx := newDb()
	defer db.DB(ctx).Close(ctx)

	a := createTestSpool(t, `{"brand": "test-srv-bambu", "material": "pla", "modifier": "matte", "colorName": "Charcoal", "colorHex": "#333333", "status": "in_use"}`)
	defer deleteTestSpool(ctx, a.ID)
	b := createTestSpool(t, `{"brand": "test-srv-bambu", "material": "petg", "colorName": "Clear", "colorHex": "#FFFFFF", "status": "sealed"}`)
	defer deleteTestSpool(ctx, b.ID)
	c := createTestSpool(t, `{"brand": "test-srv-polymaker", "material": "pla", "colorName": "Army Green", "colorHex": "#4B5320", "status": "in_use"}`)
	defer deleteTestSpool(ctx, c.ID)

	// Filter by brand and status
	req, _ := http.NewRequest("GET", "/spools?brand=test-srv-bambu&status=in_use", nil)
	response := executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	var spools []api.Spool
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &spools))
	require.Len(t, spools, 1)
	assert.Equal(t, a.ID, spools[0].ID)

	// Sorted by brand
	req, _ = http.NewRequest("GET", "/spools?sort=by-brand", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &spools))

	var mine []string
	for _, s := range spools {
		switch s.ID {
		case a.ID, b.ID, c.ID:
			mine = append(mine, s.ColorName)
		}
	}
	assert.Equal(t, []string{"Charcoal", "Clear", "Army Green"}, mine)

	// Unknown sort key is rejected
	req, _ = http.NewRequest("GET", "/spools?sort=newest", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, response.Code)

	// Facets reflect what is on the shelf
	req, _ = http.NewRequest("GET", "/spools/facets", nil)
	response = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, response.Code)

	var facets api.SpoolFacets
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &facets))
	assert.Contains(t, facets.Brands, "test-srv-bambu")
	assert.Contains(t, facets.Brands, "test-srv-polymaker")
	assert.Contains(t, facets.Materials, "pla")
	assert.Contains(t, facets.Modifiers, "matte")
}
