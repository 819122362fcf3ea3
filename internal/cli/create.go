package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
)

var (
	// Create command flags
	ignoreErrors bool
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create -f FILENAME [flags]",
	Short: "Create resources from a file",
	Long: `Create resources from a file. The resource type is determined by the 'kind' field
in each YAML document. Supported resource kinds:
  - Brand
  - Material
  - Modifier
  - CatalogColor
  - Spool

Documents are applied in dependency order, so a single file can define brands,
materials, modifiers, and the colors that reference them.

Examples:
  # Load a catalog definition
  spoolctl create -f catalog.yaml

  # Load a catalog and keep going past failures
  spoolctl create -f catalog.yaml --ignore-errors`,
	RunE: createResource,
}

// createResource handles the creation of resources from a file
// It validates the input, loads the resources, and sends them to the server
func createResource(cmd *cobra.Command, args []string) error {
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		return err
	}
	if filename == "" {
		return fmt.Errorf("filename is required")
	}

	resources, err := LoadResourceFromMultiYAMLFile(filename)
	if err != nil {
		return err
	}

	// Colors reference brand, material, and modifier; spools snapshot free text
	// so they go last regardless.
	orderedResourceList := []string{
		KindBrand,
		KindMaterial,
		KindModifier,
		KindColor,
		KindSpool,
	}

	var statusValues []map[string]any
	defer func() {
		if len(statusValues) > 0 {
			if jsonOutput {
				printJSON(statusValues)
			} else {
				for _, status := range statusValues {
					created, exists := status["created"]
					if !exists {
						created = false
					}
					location, ok := status["location"].(string)
					if !ok {
						location = ""
					}
					if created.(bool) {
						okLabel.Fprintf(os.Stdout, "[OK] ")
						fmt.Fprintf(os.Stdout, "Created: %s\n", location)
					} else {
						if !ignoreErrors {
							errorLabel.Fprintf(os.Stderr, "[ERROR] ")
							fmt.Fprintf(os.Stderr, "%s: %s: %s\n", status["kind"], status["name"], status["error"])
						} else {
							errorLabel.Fprintf(os.Stdout, "[ERROR] ")
							fmt.Fprintf(os.Stdout, "%s: %s: %s\n", status["kind"], status["name"], status["error"])
						}
					}
				}
			}
		}
	}()

	for _, kind := range orderedResourceList {
		resources, ok := resources[kind]
		if !ok {
			continue
		}
		for _, resource := range resources {
			kv, err := handleCreateResource(resource)
			if err != nil {
				statusValues = append(statusValues, map[string]any{
					"kind":    resource.Kind,
					"name":    resource.DisplayName(),
					"created": false,
					"error":   err.Error(),
				})
				if !ignoreErrors {
					return ErrAlreadyHandled
				}
				continue
			}
			statusValues = append(statusValues, kv)
		}
	}
	return nil
}

func handleCreateResource(resource Resource) (map[string]any, error) {
	resourceType, err := GetResourceType(resource.Kind)
	if err != nil {
		return nil, err
	}

	client := httpclient.NewClient(GetConfig())

	_, location, err := client.CreateResource(resourceType, resource.JSON, nil)
	if err != nil {
		return nil, err
	}

	kv := map[string]any{
		"kind":     resource.Kind,
		"created":  true,
		"location": location,
		"name":     resource.DisplayName(),
	}
	return kv, nil
}

// init initializes the create command with its flags and adds it to the root command
func init() {
	// Add flags to the create command
	createCmd.Flags().StringP("filename", "f", "", "Filename to use to create the resources")
	createCmd.MarkFlagRequired("filename")

	createCmd.Flags().BoolVarP(&ignoreErrors, "ignore-errors", "i", false, "Ignore errors and continue with the next resource")

	// Add the create command to the root command
	rootCmd.AddCommand(createCmd)
}
