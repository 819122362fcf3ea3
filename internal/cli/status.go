package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spooltrack/spooltrack/internal/common/httpclient"
)

// StatusResponse represents the response from the /version endpoint
type StatusResponse struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get server version information",
	Long: `Get server version information. This command returns the server version
and the API version it speaks.

Examples:
  # Get server status
  spoolctl status

  # Get server status in JSON format
  spoolctl status -j`,
	RunE: getStatus,
}

// getStatus handles retrieving server status information
func getStatus(cmd *cobra.Command, args []string) error {
	// Load the config file first
	LoadConfig(configFile)

	config := GetConfig()
	if config == nil {
		if jsonOutput {
			kv := map[string]string{
				"version_cli": getCLIVersion(),
				"error":       "Config file cannot be loaded",
			}
			printJSON(kv)
		} else {
			fmt.Printf("spoolctl %s\n", getCLIVersion())
			fmt.Println("Error: Config file cannot be loaded")
		}
		return ErrAlreadyHandled
	}

	client := httpclient.NewClient(config)

	opts := httpclient.RequestOptions{
		Method: "GET",
		Path:   "version",
	}

	response, _, err := client.DoRequest(opts)
	if err != nil {
		if jsonOutput {
			kv := map[string]string{
				"version_cli": getCLIVersion(),
				"error":       "Unable to connect to server: " + err.Error(),
			}
			printJSON(kv)
		} else {
			fmt.Printf("spoolctl %s\n", getCLIVersion())
			fmt.Println("Error: Unable to connect to server: " + err.Error())
		}
		return ErrAlreadyHandled
	}

	var statusResp StatusResponse
	if err := json.Unmarshal(response, &statusResp); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}

	if jsonOutput {
		output := map[string]any{
			"result":      1,
			"version_cli": getCLIVersion(),
			"value":       statusResp,
		}

		jsonBytes, err := json.MarshalIndent(output, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to format JSON output: %v", err)
		}
		fmt.Println(string(jsonBytes))
	} else {
		fmt.Printf("spoolctl %s\n", getCLIVersion())
		fmt.Printf("Server Version: %s\n", statusResp.ServerVersion)
		fmt.Printf("API Version: %s\n", statusResp.ApiVersion)
	}

	return nil
}

// init initializes the status command and adds it to the root command
func init() {
	rootCmd.AddCommand(statusCmd)
}
