package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
	"github.com/spooltrack/spooltrack/pkg/api"
)

// brandCmd represents the brand command group
var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Manage filament brands in the catalog",
	Long: `Manage filament brands in the catalog.

Examples:
  # Add a brand
  spoolctl brand add prusament "Prusament"

  # Rename a brand
  spoolctl brand update prusament "Prusament by Prusa"

  # Delete a brand and its curated colors
  spoolctl brand delete prusament

  # List brands in display order
  spoolctl brand list`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var brandAddCmd = &cobra.Command{
	Use:   "add ID NAME",
	Short: "Add a brand to the catalog",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{
			"id":   args[0],
			"name": args[1],
		})
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		_, location, err := client.CreateResource("brands", body, nil)
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

var brandUpdateCmd = &cobra.Command{
	Use:   "update ID NAME",
	Short: "Rename a brand",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{
			"id":   args[0],
			"name": args[1],
		})
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		if _, err := client.UpdateResource("brands", body, nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Updated: brand: %s\n", args[0])
		}
		return nil
	},
}

var brandDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a brand and its curated colors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		if err := client.DeleteResource("brands", args[0], nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			fmt.Printf("Successfully deleted brand/%s\n", args[0])
		}
		return nil
	},
}

var brandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List brands in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("brands", nil)
		if err != nil {
			return err
		}

		var brands []api.Brand
		if err := json.Unmarshal(response, &brands); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": brands})
			return nil
		}

		fmt.Println("Brands:")
		for _, b := range brands {
			fmt.Printf("- %s (%s)\n", b.ID, b.Name)
		}
		return nil
	},
}

// init initializes the brand command group and adds it to the root command
func init() {
	brandCmd.AddCommand(brandAddCmd)
	brandCmd.AddCommand(brandUpdateCmd)
	brandCmd.AddCommand(brandDeleteCmd)
	brandCmd.AddCommand(brandListCmd)
	rootCmd.AddCommand(brandCmd)
}
