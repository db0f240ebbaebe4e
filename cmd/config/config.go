package config

import (
	"fmt"

	"github.com/spf13/cobra"

	appConfig "github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/utils"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "CLI configuration commands",
	Long: `CLI configuration commands for QuickBites Admin.

This command group shows the current configuration and sets individual
values such as the backend URL and default output format.`,
}

// showCmd shows the current configuration
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the loaded configuration file and its values",
	RunE:  runShow,
}

// setCmd sets a configuration value
var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value (server.url, server.timeout, format.default) and persist it",
	Args:  cobra.ExactArgs(2),
	RunE:  runSet,
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := appConfig.Get()

	fmt.Printf("Config file: %s\n", appConfig.Path())
	fmt.Printf("Server URL: %s\n", cfg.Server.URL)
	fmt.Printf("Timeout: %s\n", cfg.Server.Timeout)
	fmt.Printf("Output format: %s\n", cfg.Format.Default)
	if cfg.Auth.Token != "" {
		fmt.Println("Session: stored")
	} else {
		fmt.Println("Session: none")
	}

	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	if key == "server.url" {
		if err := utils.ValidateURL(value); err != nil {
			return err
		}
	}

	if err := appConfig.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	format.PrintSuccess("✓ %s set to %s", key, value)
	return nil
}

func init() {
	ConfigCmd.AddCommand(showCmd)
	ConfigCmd.AddCommand(setCmd)
}
