package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quickbites/admin-cli/cmd/auth"
	"github.com/quickbites/admin-cli/cmd/categories"
	"github.com/quickbites/admin-cli/cmd/config"
	"github.com/quickbites/admin-cli/cmd/customers"
	"github.com/quickbites/admin-cli/cmd/fooditems"
	"github.com/quickbites/admin-cli/cmd/orders"
	"github.com/quickbites/admin-cli/cmd/restaurants"
	"github.com/quickbites/admin-cli/cmd/staff"
	"github.com/quickbites/admin-cli/cmd/wallet"
	appConfig "github.com/quickbites/admin-cli/internal/config"
)

var (
	cfgFile string
	debug   bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quickbites-admin",
	Short: "QuickBites Admin - command-line administration for the QuickBites platform",
	Long: `QuickBites Admin provides command-line access to the administrative
functionality of the QuickBites food-delivery platform.

The CLI communicates with the platform backend via its HTTP/REST API:
restaurant and menu management, order tracking, customer and
delivery-staff listings, and wallet transaction reports.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		// Set debug mode
		if debug {
			appConfig.SetDebug(true)
		}

		// Set output format
		if output != "" {
			appConfig.SetOutputFormat(output)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+appConfig.DefaultFileName+")")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml, text)")

	// Add subcommands
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(restaurants.RestaurantsCmd)
	rootCmd.AddCommand(fooditems.FoodItemsCmd)
	rootCmd.AddCommand(categories.CategoriesCmd)
	rootCmd.AddCommand(orders.OrdersCmd)
	rootCmd.AddCommand(customers.CustomersCmd)
	rootCmd.AddCommand(staff.StaffCmd)
	rootCmd.AddCommand(wallet.WalletCmd)
	rootCmd.AddCommand(config.ConfigCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".quickbites-admin" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".quickbites-admin")
	}

	// Environment variables
	viper.SetEnvPrefix("QUICKBITES")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && debug {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
