package customers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickbites/admin-cli/internal/api"
	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/listing"
	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
)

const resource = "customers"

// CustomersCmd represents the customers command
var CustomersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Customer listing commands",
	Long: `Customer listing commands for QuickBites Admin.

This command group lists platform customers and supports inspecting
and removing individual accounts.`,
}

// listCmd lists customers
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Long:  "List customers with search, status filter, and sorting",
	RunE:  runList,
}

// showCmd shows one customer
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a customer",
	Long:  "Display a single customer account by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// deleteCmd deletes a customer
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer",
	Long:  "Remove a customer account from the platform",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// newView builds the listing view for customers: searchable by name
// and mobile number, filterable by status.
func newView(client *api.Client, limit int) *listing.View[models.Customer] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.Customer], error) {
		return api.GetList[models.Customer](ctx, client, resource, models.ListParams{Page: page, Limit: limit})
	}

	return listing.NewView(fetch, listing.Config[models.Customer]{
		SearchFields: func(c models.Customer) []string {
			return []string{c.Name, c.Mobile}
		},
		CategoryField: func(c models.Customer) string {
			return c.Status
		},
		SortKeys: map[string]listing.CompareFunc[models.Customer]{
			"name":   listing.ByString(func(c models.Customer) string { return c.Name }),
			"status": listing.ByString(func(c models.Customer) string { return c.Status }),
			"orders": listing.ByInt(func(c models.Customer) int { return c.Orders }),
		},
		PageSize: limit,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	view := newView(client, limit)
	rows, err := listing.Run(cmd.Context(), view, listing.Params{
		Search:   search,
		Category: status,
		SortKey:  sortKey,
		Desc:     desc,
		Page:     page,
	})
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No customers found")
		return nil
	}

	if err := format.Print(rows); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d (%d total)\n", view.Page(), view.Pages(), view.Total())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	customer, err := api.GetOne[models.Customer](cmd.Context(), client, resource, args[0])
	if err != nil {
		return fmt.Errorf("failed to show customer: %w", err)
	}

	return format.Print(customer)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	if err := client.Delete(cmd.Context(), resource, args[0]); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	format.PrintSuccess("✓ Customer '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on name or mobile number")
	listCmd.Flags().String("status", "", "Filter by status (Active, Inactive)")
	listCmd.Flags().String("sort", "", "Sort key (name, status, orders)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	CustomersCmd.AddCommand(listCmd)
	CustomersCmd.AddCommand(showCmd)
	CustomersCmd.AddCommand(deleteCmd)
}
