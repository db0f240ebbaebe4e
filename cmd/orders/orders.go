package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quickbites/admin-cli/internal/api"
	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/listing"
	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
)

const resource = "orders"

// orderStatuses are the states an order can be moved to
var orderStatuses = []string{"pending", "confirmed", "preparing", "out-for-delivery", "delivered", "cancelled"}

// OrdersCmd represents the orders command
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order tracking commands",
	Long: `Order tracking commands for QuickBites Admin.

This command group lists customer orders, shows their line items, and
moves orders through their delivery statuses.`,
}

// listCmd lists orders
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Long:  "List customer orders with search, status filter, and sorting",
	RunE:  runList,
}

// showCmd shows one order
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an order",
	Long:  "Display a single order with its line items",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// setStatusCmd updates an order's status
var setStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Update an order's status",
	Long:  "Move an order to a new status (" + strings.Join(orderStatuses, ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE:  runSetStatus,
}

// newView builds the listing view for orders: searchable by order
// number and customer name, filterable by status.
func newView(client *api.Client, restaurant string, limit int) *listing.View[models.Order] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.Order], error) {
		params := models.ListParams{Page: page, Limit: limit}
		if restaurant != "" {
			params.Filter = map[string]string{"restaurant": restaurant}
		}
		return api.GetList[models.Order](ctx, client, resource, params)
	}

	return listing.NewView(fetch, listing.Config[models.Order]{
		SearchFields: func(o models.Order) []string {
			return []string{o.Number, o.CustomerName}
		},
		CategoryField: func(o models.Order) string {
			return o.Status
		},
		SortKeys: map[string]listing.CompareFunc[models.Order]{
			"number":    listing.ByString(func(o models.Order) string { return o.Number }),
			"customer":  listing.ByString(func(o models.Order) string { return o.CustomerName }),
			"status":    listing.ByString(func(o models.Order) string { return o.Status }),
			"total":     listing.ByDecimal(func(o models.Order) decimal.Decimal { return o.Total }),
			"placed_at": listing.ByString(func(o models.Order) string { return o.PlacedAt }),
		},
		PageSize: limit,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	restaurant, _ := cmd.Flags().GetString("restaurant")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	view := newView(client, restaurant, limit)
	rows, err := listing.Run(cmd.Context(), view, listing.Params{
		Search:   search,
		Category: status,
		SortKey:  sortKey,
		Desc:     desc,
		Page:     page,
	})
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No orders found")
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

	order, err := api.GetOne[models.Order](cmd.Context(), client, resource, args[0])
	if err != nil {
		return fmt.Errorf("failed to show order: %w", err)
	}

	if err := format.Print(order); err != nil {
		return err
	}

	if len(order.Items) > 0 {
		fmt.Println()
		return format.Print(order.Items)
	}
	return nil
}

func runSetStatus(cmd *cobra.Command, args []string) error {
	id := args[0]
	status := strings.ToLower(args[1])

	valid := false
	for _, s := range orderStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid status %q (valid: %s)", status, strings.Join(orderStatuses, ", "))
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	order, err := api.Update[models.Order](cmd.Context(), client, resource, id, map[string]string{"status": status})
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	format.PrintSuccess("✓ Order '%s' moved to %s", order.Number, order.Status)
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on order number or customer name")
	listCmd.Flags().String("status", "", "Filter by status ("+strings.Join(orderStatuses, ", ")+")")
	listCmd.Flags().String("restaurant", "", "Restrict to one restaurant's orders")
	listCmd.Flags().String("sort", "", "Sort key (number, customer, status, total, placed_at)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	OrdersCmd.AddCommand(listCmd)
	OrdersCmd.AddCommand(showCmd)
	OrdersCmd.AddCommand(setStatusCmd)
}
