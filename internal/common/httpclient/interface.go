// Package httpclient provides a configurable HTTP client for making requests to REST APIs.
// It handles common HTTP operations, retries transient failures, and provides error
// handling for server responses. The package requires a Configurator implementation
// for server configuration details.
package httpclient

// HTTPClientInterface defines the interface for HTTP client implementations.
// It provides a common set of methods for making HTTP requests and managing resources.
type HTTPClientInterface interface {
	// DoRequest makes an HTTP request with the given options.
	// Returns the response body, Location header (if present), and any error that occurred.
	DoRequest(opts RequestOptions) ([]byte, string, error)

	// CreateResource creates a new resource using the given JSON data.
	// resourceType specifies the API endpoint, data contains the resource JSON,
	// and queryParams are optional query parameters.
	// Returns the response body, Location header, and any error that occurred.
	CreateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, string, error)

	// GetResource retrieves a resource using the given resource ID.
	// resourceType specifies the API endpoint, resourceID identifies the resource,
	// and queryParams are optional query parameters.
	// Returns the response body and any error that occurred.
	GetResource(resourceType string, resourceID string, queryParams map[string]string) ([]byte, error)

	// DeleteResource deletes a resource using the given resource ID.
	// resourceType specifies the API endpoint, resourceID identifies the resource,
	// and queryParams are optional query parameters.
	// Returns any error that occurred during the deletion.
	DeleteResource(resourceType string, resourceID string, queryParams map[string]string) error

	// UpdateResource updates an existing resource using the given JSON data.
	// resourceType specifies the API endpoint, data contains the updated resource JSON,
	// and queryParams are optional query parameters.
	// The data must contain an id field.
	// Returns the response body and any error that occurred.
	UpdateResource(resourceType string, data []byte, queryParams map[string]string) ([]byte, error)

	// ListResources lists resources of a specific type.
	// resourceType specifies the API endpoint, and queryParams are optional query parameters.
	// Returns the response body and any error that occurred.
	ListResources(resourceType string, queryParams map[string]string) ([]byte, error)
}

// Verify that the HTTPClient and TestHTTPClient implement the HTTPClientInterface.
// This is a compile-time check to ensure both implementations satisfy the interface.
var _ HTTPClientInterface = &HTTPClient{}
var _ HTTPClientInterface = &TestHTTPClient{}
