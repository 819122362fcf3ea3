package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
	"github.com/spooltrack/spooltrack/pkg/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	spoolBrand     string
	spoolMaterial  string
	spoolModifier  string
	spoolColorName string
	spoolColorHex  string
	spoolStatus    string
	spoolWeight    int
	spoolPrice     float64
	spoolPurchased string
	spoolNotes     string
	spoolSort      string
)

// spoolCmd represents the spool command group
var spoolCmd = &cobra.Command{
	Use:   "spool",
	Short: "Manage spools in the inventory",
	Long: `Manage spools in the inventory. Brand, material, and modifier are stored as
free text on the spool, so inventory entries survive later catalog edits.

Examples:
  # Add a spool
  spoolctl spool add --brand Prusament --material pla --color-name "Galaxy Black" --hex "#14141A"

  # Show a spool
  spoolctl spool get 0191d2f3-...

  # Mark a spool as in use
  spoolctl spool update 0191d2f3-... --status in_use

  # Delete a spool
  spoolctl spool delete 0191d2f3-...

  # List spools filtered by material, grouped by color family
  spoolctl spool list --material pla --sort by-color-family

  # Show the distinct filter values present in the inventory
  spoolctl spool facets`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// spoolBodyFromFlags builds a request body from the flags the user actually set.
// Changed-flag tracking keeps unset fields out of the body, which the partial
// update endpoint reads as "leave unchanged".
func spoolBodyFromFlags(cmd *cobra.Command) ([]byte, error) {
	body := map[string]any{}
	if cmd.Flags().Changed("brand") {
		body["brand"] = spoolBrand
	}
	if cmd.Flags().Changed("material") {
		body["material"] = spoolMaterial
	}
	if cmd.Flags().Changed("modifier") {
		body["modifier"] = spoolModifier
	}
	if cmd.Flags().Changed("color-name") {
		body["colorName"] = spoolColorName
	}
	if cmd.Flags().Changed("hex") {
		body["colorHex"] = spoolColorHex
	}
	if cmd.Flags().Changed("status") {
		body["status"] = spoolStatus
	}
	if cmd.Flags().Changed("weight") {
		body["initialWeight"] = spoolWeight
	}
	if cmd.Flags().Changed("price") {
		body["price"] = spoolPrice
	}
	if cmd.Flags().Changed("purchased") {
		body["purchaseDate"] = spoolPurchased
	}
	if cmd.Flags().Changed("notes") {
		body["notes"] = spoolNotes
	}
	return json.Marshal(body)
}

var spoolAddCmd = &cobra.Command{
	Use:   "add --brand BRAND --material MATERIAL --color-name NAME --hex HEX [flags]",
	Short: "Add a spool to the inventory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := spoolBodyFromFlags(cmd)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		_, location, err := client.CreateResource("spools", body, nil)
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

var spoolGetCmd = &cobra.Command{
	Use:   "get SPOOL_ID",
	Short: "Show a spool",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.GetResource("spools", args[0], nil)
		if err != nil {
			return err
		}

		var responseData map[string]any
		if err := json.Unmarshal(response, &responseData); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": responseData})
			return nil
		}

		yamlBytes, err := yaml.Marshal(responseData)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %v", err)
		}
		fmt.Println(string(yamlBytes))
		return nil
	},
}

var spoolUpdateCmd = &cobra.Command{
	Use:   "update SPOOL_ID [flags]",
	Short: "Update fields on a spool",
	Long: `Update fields on a spool. Only the flags you set are sent to the server;
everything else is left unchanged. Set an optional field to an empty string
to clear it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := spoolBodyFromFlags(cmd)
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		opts := httpclient.RequestOptions{
			Method: "PUT",
			Path:   "spools/" + args[0],
			Body:   body,
		}
		if _, _, err := client.DoRequest(opts); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Updated: spool: %s\n", args[0])
		}
		return nil
	},
}

var spoolDeleteCmd = &cobra.Command{
	Use:   "delete SPOOL_ID",
	Short: "Delete a spool from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		if err := client.DeleteResource("spools", args[0], nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			fmt.Printf("Successfully deleted spool/%s\n", args[0])
		}
		return nil
	},
}

var spoolListCmd = &cobra.Command{
	Use:   "list [flags]",
	Short: "List spools, optionally filtered and sorted",
	Long: `List spools, optionally filtered by status, brand, material, or modifier.

Sort keys: most-recent (default), oldest, by-material, by-color-family, by-brand.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		queryParams := make(map[string]string)
		if spoolStatus != "" {
			queryParams["status"] = spoolStatus
		}
		if spoolBrand != "" {
			queryParams["brand"] = spoolBrand
		}
		if spoolMaterial != "" {
			queryParams["material"] = spoolMaterial
		}
		if spoolModifier != "" {
			queryParams["modifier"] = spoolModifier
		}
		if spoolSort != "" {
			queryParams["sort"] = spoolSort
		}

		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("spools", queryParams)
		if err != nil {
			return err
		}

		var spools []api.Spool
		if err := json.Unmarshal(response, &spools); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": spools})
			return nil
		}

		fmt.Println("Spools:")
		for _, s := range spools {
			fmt.Printf("- %s  %s %s  %s %s (%s)\n",
				s.ID, s.Brand, s.MaterialDisplay, s.ColorHex, s.ColorName, s.Status)
		}
		return nil
	},
}

var spoolFacetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show the distinct filter values present in the inventory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("spools/facets", nil)
		if err != nil {
			return err
		}

		var facets api.SpoolFacets
		if err := json.Unmarshal(response, &facets); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": facets})
			return nil
		}

		title := cases.Title(language.English)
		for _, group := range []struct {
			name   string
			values []string
		}{
			{"brands", facets.Brands},
			{"materials", facets.Materials},
			{"modifiers", facets.Modifiers},
		} {
			fmt.Printf("%s:\n", title.String(group.name))
			for _, v := range group.values {
				fmt.Printf("- %s\n", v)
			}
		}
		return nil
	},
}

// init initializes the spool command group and adds it to the root command
func init() {
	for _, c := range []*cobra.Command{spoolAddCmd, spoolUpdateCmd} {
		c.Flags().StringVarP(&spoolBrand, "brand", "b", "", "Brand name")
		c.Flags().StringVarP(&spoolMaterial, "material", "m", "", "Material ID")
		c.Flags().StringVarP(&spoolModifier, "modifier", "d", "", "Modifier ID")
		c.Flags().StringVarP(&spoolColorName, "color-name", "", "", "Color name")
		c.Flags().StringVarP(&spoolColorHex, "hex", "", "", "Color hex value (e.g., #1A2B3C)")
		c.Flags().StringVarP(&spoolStatus, "status", "s", "", "Spool status (sealed, in_use, empty)")
		c.Flags().IntVarP(&spoolWeight, "weight", "w", 0, "Initial weight in grams")
		c.Flags().Float64VarP(&spoolPrice, "price", "p", 0, "Purchase price")
		c.Flags().StringVarP(&spoolPurchased, "purchased", "", "", "Purchase date (YYYY-MM-DD)")
		c.Flags().StringVarP(&spoolNotes, "notes", "", "", "Free-form notes")
	}
	spoolAddCmd.MarkFlagRequired("brand")
	spoolAddCmd.MarkFlagRequired("material")
	spoolAddCmd.MarkFlagRequired("color-name")
	spoolAddCmd.MarkFlagRequired("hex")

	spoolListCmd.Flags().StringVarP(&spoolStatus, "status", "s", "", "Filter by status (sealed, in_use, empty, all)")
	spoolListCmd.Flags().StringVarP(&spoolBrand, "brand", "b", "", "Filter by brand")
	spoolListCmd.Flags().StringVarP(&spoolMaterial, "material", "m", "", "Filter by material")
	spoolListCmd.Flags().StringVarP(&spoolModifier, "modifier", "d", "", "Filter by modifier")
	spoolListCmd.Flags().StringVarP(&spoolSort, "sort", "", "", "Sort key")

	spoolCmd.AddCommand(spoolAddCmd)
	spoolCmd.AddCommand(spoolGetCmd)
	spoolCmd.AddCommand(spoolUpdateCmd)
	spoolCmd.AddCommand(spoolDeleteCmd)
	spoolCmd.AddCommand(spoolListCmd)
	spoolCmd.AddCommand(spoolFacetsCmd)
	rootCmd.AddCommand(spoolCmd)
}
