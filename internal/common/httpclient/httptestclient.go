package httpclient

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"

	"github.com/spooltrack/spooltrack/internal/spoolsrv/server"
	"github.com/tidwall/gjson"
)

// TestHTTPClient represents a test client for making HTTP requests directly to the
// inventory server. It uses httptest.NewRecorder to capture responses without making
// actual network calls.
type TestHTTPClient struct {
	config     Configurator
	httpServer *server.SpoolServer
}

// NewTestClient creates a new test HTTP client using the provided configuration.
// It initializes a test server instance and mounts the necessary handlers.
// Returns an error if server creation fails.
func NewTestClient(config Configurator) (*TestHTTPClient, error) {
	s, err := server.CreateNewServer()
	if err != nil {
		return nil, fmt.Errorf("failed to create test server: %v", err)
	}
	s.MountHandlers()

	return &TestHTTPClient{
		config:     config,
		httpServer: s,
	}, nil
}

// DoRequest makes an HTTP request with the given options directly to the test server.
// Uses httptest.NewRecorder to capture the response without making network calls.
// Returns the response body, Location header (if present), and any error that occurred.
func (c *TestHTTPClient) DoRequest(opts RequestOptions) ([]byte, string, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, "", fmt.Errorf("invalid server URL: %v", err)
	}
	if u.Path == "" {
		u.Path = "/"
	}
	u.Path = path.Join(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(opts.Method, u.String(), bytes.NewBuffer(opts.Body))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	c.httpServer.Router.ServeHTTP(rr, req)
	body := rr.Body.Bytes()

	if rr.Code >= 400 {
		return nil, "", errorFromResponse(rr.Code, body)
	}

	return body, rr.Header().Get("Location"), nil
}

// CreateResource creates a new resource using the given JSON data.
func (c *TestHTTPClient) CreateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, string, error) {
	opts := RequestOptions{
		Method:      http.MethodPost,
		Path:        resourceType,
		QueryParams: queryParams,
		Body:        data,
	}
	return c.DoRequest(opts)
}

// GetResource retrieves a resource using the given resource ID.
func (c *TestHTTPClient) GetResource(resourceType string, resourceID string, queryParams map[string]string) ([]byte, error) {
	opts := RequestOptions{
		Method:      http.MethodGet,
		Path:        resourcePath(resourceType, resourceID),
		QueryParams: queryParams,
	}
	body, _, err := c.DoRequest(opts)
	return body, err
}

// DeleteResource deletes a resource using the given resource ID.
func (c *TestHTTPClient) DeleteResource(resourceType string, resourceID string, queryParams map[string]string) error {
	opts := RequestOptions{
		Method:      http.MethodDelete,
		Path:        resourcePath(resourceType, resourceID),
		QueryParams: queryParams,
	}
	_, _, err := c.DoRequest(opts)
	return err
}

// UpdateResource updates an existing resource using the given JSON data.
// The data must contain an id field.
func (c *TestHTTPClient) UpdateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, error) {
	resourceID := gjson.GetBytes(data, "id").String()
	if resourceID == "" {
		return nil, fmt.Errorf("id is required for update")
	}

	opts := RequestOptions{
		Method:      http.MethodPut,
		Path:        resourcePath(resourceType, resourceID),
		QueryParams: queryParams,
		Body:        data,
	}
	body, _, err := c.DoRequest(opts)
	return body, err
}

// ListResources lists resources of a specific type.
func (c *TestHTTPClient) ListResources(resourceType string, queryParams map[string]string) ([]byte, error) {
	opts := RequestOptions{
		Method:      http.MethodGet,
		Path:        resourceType,
		QueryParams: queryParams,
	}
	body, _, err := c.DoRequest(opts)
	return body, err
}
