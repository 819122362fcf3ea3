package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Resource represents a single parsed resource document. JSON holds the
// spec encoded as the request body the server expects.
type Resource struct {
	Kind string
	Spec map[string]any
	JSON []byte
}

type ResourceList []Resource

// LoadResourceFromMultiYAMLFile loads resources from a multi-YAML file, grouped by kind.
// If data is provided, it will be used instead of reading from the file.
func LoadResourceFromMultiYAMLFile(filename string, data ...[]byte) (map[string]ResourceList, error) {
	var yamlData []byte
	var err error

	if len(data) > 0 {
		// Use provided data instead of reading from file
		yamlData = data[0]
	} else {
		// Read the YAML file
		yamlData, err = os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %v", err)
		}
	}

	// Remove stray tabs
	yamlData = replaceTabsWithSpaces(yamlData)

	yamlData, err = PreprocessYAML(yamlData)
	if err != nil {
		return nil, err
	}

	docs, err := ParseMultiYAMLFromBytes(yamlData)
	if err != nil {
		return nil, err
	}

	result := make(map[string]ResourceList)

	for _, doc := range docs {
		kind, ok := doc["kind"].(string)
		if !ok {
			return nil, fmt.Errorf("resource kind: %v is not a string", doc["kind"])
		}
		if !ValidateResourceKind(kind) {
			return nil, fmt.Errorf("invalid resource kind: %s", kind)
		}

		specAny, exists := doc["spec"]
		if !exists {
			return nil, fmt.Errorf("spec not found in resource: %v", kind)
		}
		spec, ok := specAny.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("spec has invalid format: %v", specAny)
		}

		jsonData, err := json.Marshal(spec)
		if err != nil {
			return nil, fmt.Errorf("unable to parse resource: %v", err)
		}

		result[kind] = append(result[kind], Resource{
			Kind: kind,
			Spec: spec,
			JSON: jsonData,
		})
	}

	return result, nil
}

// DisplayName returns the value identifying the resource in status output.
// Catalog entities carry an id; colors and spools are named by their color name.
func (r Resource) DisplayName() string {
	for _, key := range []string{"id", "colorName", "name"} {
		if v, ok := r.Spec[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// replaceTabsWithSpaces replaces all tab characters with four spaces in a byte slice
func replaceTabsWithSpaces(b []byte) []byte {
	space := []byte("    ")
	var result []byte
	for _, c := range b {
		if c == '\t' {
			result = append(result, space...)
		} else {
			result = append(result, c)
		}
	}
	return result
}

// GetResourceType returns the API endpoint path for a given resource kind
// Maps resource kinds to their corresponding API endpoints
func GetResourceType(kind string) (string, error) {
	switch kind {
	case KindBrand:
		return "brands", nil
	case KindMaterial:
		return "materials", nil
	case KindModifier:
		return "modifiers", nil
	case KindColor:
		return "colors", nil
	case KindSpool:
		return "spools", nil
	default:
		return "", fmt.Errorf("unknown resource kind: %s", kind)
	}
}
