package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
	"github.com/spooltrack/spooltrack/pkg/api"
)

var materialDescription string

// materialCmd represents the material command group
var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Manage base materials in the catalog",
	Long: `Manage base materials in the catalog.

Examples:
  # Add a material
  spoolctl material add pla "PLA" --description "Polylactic acid"

  # Update a material
  spoolctl material update pla "PLA" --description "Easy to print, biodegradable"

  # Delete a material and its curated colors
  spoolctl material delete pla

  # List materials in display order
  spoolctl material list`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func materialBody(id, name, description string) ([]byte, error) {
	return json.Marshal(map[string]string{
		"id":          id,
		"name":        name,
		"description": description,
	})
}

var materialAddCmd = &cobra.Command{
	Use:   "add ID NAME",
	Short: "Add a material to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := materialBody(args[0], args[1], materialDescription)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		_, location, err := client.CreateResource("materials", body, nil)
		if err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "location": location})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Created: %s\n", location)
		}
		return nil
	},
}

var materialUpdateCmd = &cobra.Command{
	Use:   "update ID NAME",
	Short: "Update a material's name and description",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := materialBody(args[0], args[1], materialDescription)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		if _, err := client.UpdateResource("materials", body, nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Updated: material: %s\n", args[0])
		}
		return nil
	},
}

var materialDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a material and its curated colors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		if err := client.DeleteResource("materials", args[0], nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			fmt.Printf("Successfully deleted material/%s\n", args[0])
		}
		return nil
	},
}

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List materials in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("materials", nil)
		if err != nil {
			return err
		}

		var materials []api.Material
		if err := json.Unmarshal(response, &materials); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": materials})
			return nil
		}

		fmt.Println("Materials:")
		for _, m := range materials {
			if m.Description != "" {
				fmt.Printf("- %s (%s) - %s\n", m.ID, m.Name, m.Description)
			} else {
				fmt.Printf("- %s (%s)\n", m.ID, m.Name)
			}
		}
		return nil
	},
}

// init initializes the material command group and adds it to the root command
func init() {
	materialAddCmd.Flags().StringVarP(&materialDescription, "description", "", "", "Material description")
	materialUpdateCmd.Flags().StringVarP(&materialDescription, "description", "", "", "Material description")

	materialCmd.AddCommand(materialAddCmd)
	materialCmd.AddCommand(materialUpdateCmd)
	materialCmd.AddCommand(materialDeleteCmd)
	materialCmd.AddCommand(materialListCmd)
	rootCmd.AddCommand(materialCmd)
}
