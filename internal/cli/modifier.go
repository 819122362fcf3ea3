package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
	"github.com/spooltrack/spooltrack/pkg/api"
)

var (
	modifierSuffix            string
	availableModifierBrand    string
	availableModifierMaterial string
)

// modifierCmd represents the modifier command group
var modifierCmd = &cobra.Command{
	Use:   "modifier",
	Short: "Manage material modifiers in the catalog",
	Long: `Manage material modifiers in the catalog. A modifier is a finish or additive
variant of a base material, such as carbon-fiber or silk.

Examples:
  # Add a modifier
  spoolctl modifier add carbon-fiber "Carbon Fiber" --suffix CF

  # Update a modifier
  spoolctl modifier update carbon-fiber "Carbon Fiber" --suffix CF

  # Delete a modifier and its curated colors
  spoolctl modifier delete carbon-fiber

  # List modifiers in display order
  spoolctl modifier list

  # Show which modifiers have curated colors for a brand and material
  spoolctl modifier available -b prusament -m pla`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func modifierBody(id, name, suffix string) ([]byte, error) {
	return json.Marshal(map[string]string{
		"id":     id,
		"name":   name,
		"suffix": suffix,
	})
}

var modifierAddCmd = &cobra.Command{
	Use:   "add ID NAME",
	Short: "Add a modifier to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := modifierBody(args[0], args[1], modifierSuffix)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		_, location, err := client.CreateResource("modifiers", body, nil)
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

var modifierUpdateCmd = &cobra.Command{
	Use:   "update ID NAME",
	Short: "Update a modifier's name and suffix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := modifierBody(args[0], args[1], modifierSuffix)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		if _, err := client.UpdateResource("modifiers", body, nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Updated: modifier: %s\n", args[0])
		}
		return nil
	},
}

var modifierDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a modifier and its curated colors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		if err := client.DeleteResource("modifiers", args[0], nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			fmt.Printf("Successfully deleted modifier/%s\n", args[0])
		}
		return nil
	},
}

var modifierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modifiers in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("modifiers", nil)
		if err != nil {
			return err
		}

		var modifiers []api.Modifier
		if err := json.Unmarshal(response, &modifiers); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": modifiers})
			return nil
		}

		fmt.Println("Modifiers:")
		for _, m := range modifiers {
			if m.Suffix != "" {
				fmt.Printf("- %s (%s, suffix %s)\n", m.ID, m.Name, m.Suffix)
			} else {
				fmt.Printf("- %s (%s)\n", m.ID, m.Name)
			}
		}
		return nil
	},
}

var modifierAvailableCmd = &cobra.Command{
	Use:   "available -b BRAND -m MATERIAL",
	Short: "List modifiers with curated colors for a brand and material",
	Long: `List the modifiers that have curated colors for the given brand and material.
An empty list means the combination has no curated catalog, and spool entry
falls back to free-text color input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("modifiers/available", map[string]string{
			"brand":    availableModifierBrand,
			"material": availableModifierMaterial,
		})
		if err != nil {
			return err
		}

		var available api.AvailableModifiers
		if err := json.Unmarshal(response, &available); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": available})
			return nil
		}

		if len(available.ModifierIDs) == 0 {
			fmt.Println("No curated colors for this combination")
			return nil
		}
		fmt.Println(strings.Join(available.ModifierIDs, "\n"))
		return nil
	},
}

// init initializes the modifier command group and adds it to the root command
func init() {
	modifierAddCmd.Flags().StringVarP(&modifierSuffix, "suffix", "", "", "Short display suffix (e.g., CF)")
	modifierUpdateCmd.Flags().StringVarP(&modifierSuffix, "suffix", "", "", "Short display suffix (e.g., CF)")

	modifierAvailableCmd.Flags().StringVarP(&availableModifierBrand, "brand", "b", "", "Brand ID")
	modifierAvailableCmd.Flags().StringVarP(&availableModifierMaterial, "material", "m", "", "Material ID")
	modifierAvailableCmd.MarkFlagRequired("brand")
	modifierAvailableCmd.MarkFlagRequired("material")

	modifierCmd.AddCommand(modifierAddCmd)
	modifierCmd.AddCommand(modifierUpdateCmd)
	modifierCmd.AddCommand(modifierDeleteCmd)
	modifierCmd.AddCommand(modifierListCmd)
	modifierCmd.AddCommand(modifierAvailableCmd)
	rootCmd.AddCommand(modifierCmd)
}
