package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
	"github.com/spooltrack/spooltrack/pkg/api"
)

var (
	colorBrand    string
	colorMaterial string
	colorModifier string
	colorName     string
	colorHex      string
)

// colorCmd represents the color command group
var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Manage curated colors in the catalog",
	Long: `Manage curated colors in the catalog. A color belongs to one
brand, material, and modifier combination.

Examples:
  # Add a curated color
  spoolctl color add -b prusament -m pla -d basic --name "Galaxy Black" --hex "#14141A"

  # Update a color's name or hex
  spoolctl color update 0191d2f3-... --name "Galaxy Black v2"

  # Delete a color
  spoolctl color delete 0191d2f3-...

  # List colors for a combination
  spoolctl color list -b prusament -m pla -d basic`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var colorAddCmd = &cobra.Command{
	Use:   "add -b BRAND -m MATERIAL -d MODIFIER --name NAME --hex HEX",
	Short: "Add a curated color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := json.Marshal(map[string]string{
			"brandId":    colorBrand,
			"materialId": colorMaterial,
			"modifierId": colorModifier,
			"colorName":  colorName,
			"colorHex":   colorHex,
		})
		if err != nil {
			return err
		}

		client := httpclient.NewClient(GetConfig())
		_, location, err := client.CreateResource("colors", body, nil)
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

var colorUpdateCmd = &cobra.Command{
	Use:   "update COLOR_ID [--name NAME] [--hex HEX]",
	Short: "Update a color's name or hex value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())

		// Fetch the stored color so unchanged fields survive the full update.
		current, err := client.GetResource("colors", args[0], nil)
		if err != nil {
			return err
		}
		var stored api.CatalogColor
		if err := json.Unmarshal(current, &stored); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if cmd.Flags().Changed("name") {
			stored.ColorName = colorName
		}
		if cmd.Flags().Changed("hex") {
			stored.ColorHex = colorHex
		}

		body, err := json.Marshal(map[string]string{
			"id":        stored.ID,
			"colorName": stored.ColorName,
			"colorHex":  stored.ColorHex,
		})
		if err != nil {
			return err
		}

		if _, err := client.UpdateResource("colors", body, nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			okLabel.Fprintf(os.Stdout, "[OK] ")
			fmt.Fprintf(os.Stdout, "Updated: color: %s\n", args[0])
		}
		return nil
	},
}

var colorDeleteCmd = &cobra.Command{
	Use:   "delete COLOR_ID",
	Short: "Delete a curated color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		if err := client.DeleteResource("colors", args[0], nil); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "id": args[0]})
		} else {
			fmt.Printf("Successfully deleted color/%s\n", args[0])
		}
		return nil
	},
}

var colorListCmd = &cobra.Command{
	Use:   "list -b BRAND -m MATERIAL -d MODIFIER",
	Short: "List curated colors for a combination in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := httpclient.NewClient(GetConfig())
		response, err := client.ListResources("colors", map[string]string{
			"brand":    colorBrand,
			"material": colorMaterial,
			"modifier": colorModifier,
		})
		if err != nil {
			return err
		}

		var colors []api.CatalogColor
		if err := json.Unmarshal(response, &colors); err != nil {
			return fmt.Errorf("failed to parse response: %v", err)
		}

		if jsonOutput {
			printJSON(map[string]any{"result": 1, "value": colors})
			return nil
		}

		fmt.Println("Colors:")
		for _, c := range colors {
			fmt.Printf("- %s  %s  %s\n", c.ID, c.ColorHex, c.ColorName)
		}
		return nil
	},
}

// init initializes the color command group and adds it to the root command
func init() {
	for _, c := range []*cobra.Command{colorAddCmd, colorListCmd} {
		c.Flags().StringVarP(&colorBrand, "brand", "b", "", "Brand ID")
		c.Flags().StringVarP(&colorMaterial, "material", "m", "", "Material ID")
		c.Flags().StringVarP(&colorModifier, "modifier", "d", "", "Modifier ID")
		c.MarkFlagRequired("brand")
		c.MarkFlagRequired("material")
		c.MarkFlagRequired("modifier")
	}

	colorAddCmd.Flags().StringVarP(&colorName, "name", "", "", "Color name")
	colorAddCmd.Flags().StringVarP(&colorHex, "hex", "", "", "Color hex value (e.g., #1A2B3C)")
	colorAddCmd.MarkFlagRequired("name")
	colorAddCmd.MarkFlagRequired("hex")

	colorUpdateCmd.Flags().StringVarP(&colorName, "name", "", "", "Color name")
	colorUpdateCmd.Flags().StringVarP(&colorHex, "hex", "", "", "Color hex value (e.g., #1A2B3C)")

	colorCmd.AddCommand(colorAddCmd)
	colorCmd.AddCommand(colorUpdateCmd)
	colorCmd.AddCommand(colorDeleteCmd)
	colorCmd.AddCommand(colorListCmd)
	rootCmd.AddCommand(colorCmd)
}
