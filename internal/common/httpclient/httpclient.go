// Package httpclient provides a configurable HTTP client for making requests to REST APIs.
// It handles common HTTP operations, retries transient failures, and provides error
// handling for server responses. The package requires a Configurator implementation
// for server configuration details.
package httpclient

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/tidwall/gjson"
)

// Configurator defines the interface for providing server configuration details.
type Configurator interface {
	GetServerURL() string
}

// ServerError represents an error response from the server with a result code,
// error message, and optional per-field validation messages.
type ServerError struct {
	Result int               `json:"result"` // HTTP status code or result code from server
	Error  string            `json:"error"`  // Error message from server
	Fields map[string]string `json:"fields"` // Optional per-field validation messages
}

// HTTPError represents an error response from the server with HTTP status code and message.
type HTTPError struct {
	StatusCode int               // HTTP status code of the error
	Message    string            // Error message or response body
	Fields     map[string]string // Per-field validation messages, if the server sent any
}

// Error implements the error interface for HTTPError.
// Field-level messages are appended one per line for display.
func (e *HTTPError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	var sb strings.Builder
	sb.WriteString(e.Message)
	for _, field := range fields {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", field, e.Fields[field]))
	}
	return sb.String()
}

// HTTPClient represents a client for making HTTP requests to a REST API server.
// It handles request building, response processing, and retries.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// ClientOptions contains options for configuring the HTTP client.
type ClientOptions struct {
	DisableCertValidation bool // If true, skips SSL certificate validation
}

// NewClient creates a new HTTP client using the provided configuration.
// The config parameter must implement the Configurator interface.
func NewClient(config Configurator, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if strings.HasPrefix(config.GetServerURL(), "https://") {
		clientOpts.DisableCertValidation = true
	}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}
	return NewClientWithOptions(config, clientOpts)
}

// NewClientWithOptions creates a new HTTP client using the provided configuration and options.
// The config parameter must implement the Configurator interface.
func NewClientWithOptions(config Configurator, opts ClientOptions) *HTTPClient {
	httpClient := &http.Client{}

	if opts.DisableCertValidation {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
	}
}

// RequestOptions contains options for making HTTP requests.
// All fields are required except QueryParams and Body.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, PUT, DELETE)
	Path        string            // API endpoint path
	QueryParams map[string]string // Optional query parameters
	Body        []byte            // Optional request body
}

const requestAttempts = 3

// DoRequest makes an HTTP request with the given options.
// Returns the response body, Location header (if present), and any error that occurred.
// Transport failures are retried; server responses, including errors, are not.
func (c *HTTPClient) DoRequest(opts RequestOptions) ([]byte, string, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, "", fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = path.Join(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	var resp *http.Response
	err = retry.Do(
		func() error {
			req, err := http.NewRequest(opts.Method, u.String(), bytes.NewBuffer(opts.Body))
			if err != nil {
				return retry.Unrecoverable(fmt.Errorf("failed to create request: %v", err))
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err = c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("request failed: %v", err)
			}
			return nil
		},
		retry.Attempts(requestAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode >= 400 {
		return nil, "", errorFromResponse(resp.StatusCode, body)
	}

	return body, resp.Header.Get("Location"), nil
}

// errorFromResponse converts an error response body into an HTTPError,
// preserving the server's error envelope when it parses.
func errorFromResponse(statusCode int, body []byte) *HTTPError {
	var serverErr ServerError
	if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Error != "" {
		return &HTTPError{
			StatusCode: statusCode,
			Message:    serverErr.Error,
			Fields:     serverErr.Fields,
		}
	}
	if statusCode == http.StatusNotFound {
		return &HTTPError{
			StatusCode: statusCode,
			Message:    "server doesn't implement this endpoint",
		}
	}
	return &HTTPError{
		StatusCode: statusCode,
		Message:    string(body),
	}
}

// CreateResource creates a new resource using the given JSON data.
// resourceType specifies the API endpoint, data contains the resource JSON,
// and queryParams are optional query parameters.
// Returns the response body, Location header, and any error that occurred.
func (c *HTTPClient) CreateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, string, error) {
	opts := RequestOptions{
		Method:      http.MethodPost,
		Path:        resourceType,
		QueryParams: queryParams,
		Body:        data,
	}
	return c.DoRequest(opts)
}

// GetResource retrieves a resource using the given resource ID.
// resourceType specifies the API endpoint, resourceID identifies the resource,
// and queryParams are optional query parameters.
// Returns the response body and any error that occurred.
func (c *HTTPClient) GetResource(resourceType string, resourceID string, queryParams map[string]string) ([]byte, error) {
	opts := RequestOptions{
		Method:      http.MethodGet,
		Path:        resourcePath(resourceType, resourceID),
		QueryParams: queryParams,
	}
	body, _, err := c.DoRequest(opts)
	return body, err
}

// DeleteResource deletes a resource using the given resource ID.
// resourceType specifies the API endpoint, resourceID identifies the resource,
// and queryParams are optional query parameters.
// Returns any error that occurred during the deletion.
func (c *HTTPClient) DeleteResource(resourceType string, resourceID string, queryParams map[string]string) error {
	opts := RequestOptions{
		Method:      http.MethodDelete,
		Path:        resourcePath(resourceType, resourceID),
		QueryParams: queryParams,
	}
	_, _, err := c.DoRequest(opts)
	return err
}

// UpdateResource updates an existing resource using the given JSON data.
// resourceType specifies the API endpoint, data contains the updated resource JSON,
// and queryParams are optional query parameters.
// The data must contain an id field.
// Returns the response body and any error that occurred.
func (c *HTTPClient) UpdateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, error) {
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
// resourceType specifies the API endpoint, and queryParams are optional query parameters.
// Returns the response body and any error that occurred.
func (c *HTTPClient) ListResources(resourceType string, queryParams map[string]string) ([]byte, error) {
	opts := RequestOptions{
		Method:      http.MethodGet,
		Path:        resourceType,
		QueryParams: queryParams,
	}
	body, _, err := c.DoRequest(opts)
	return body, err
}

// resourcePath joins a resource type and ID into an API endpoint path.
func resourcePath(resourceType, resourceID string) string {
	resourceType = strings.Trim(resourceType, "/")
	resourceID = strings.Trim(resourceID, "/")
	return resourceType + "/" + resourceID
}
