package staff

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
	"github.com/quickbites/admin-cli/internal/utils"
)

const resource = "delivery-agents"

// StaffCmd represents the staff command
var StaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Delivery staff management commands",
	Long: `Delivery staff management commands for QuickBites Admin.

This command group lists delivery agents and supports registering and
removing them.`,
}

// listCmd lists delivery agents
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List delivery agents",
	Long:  "List delivery agents with search, status filter, and sorting",
	RunE:  runList,
}

// showCmd shows one delivery agent
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a delivery agent",
	Long:  "Display a single delivery agent by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// createCmd registers a delivery agent
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a delivery agent",
	Long:  "Register a new delivery agent with a name and mobile number",
	RunE:  runCreate,
}

// deleteCmd deletes a delivery agent
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a delivery agent",
	Long:  "Remove a delivery agent from the platform",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// newView builds the listing view for delivery agents: searchable by
// name and mobile number, filterable by status.
func newView(client *api.Client, limit int) *listing.View[models.DeliveryAgent] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.DeliveryAgent], error) {
		return api.GetList[models.DeliveryAgent](ctx, client, resource, models.ListParams{Page: page, Limit: limit})
	}

	return listing.NewView(fetch, listing.Config[models.DeliveryAgent]{
		SearchFields: func(a models.DeliveryAgent) []string {
			return []string{a.Name, a.Mobile}
		},
		CategoryField: func(a models.DeliveryAgent) string {
			return a.Status
		},
		SortKeys: map[string]listing.CompareFunc[models.DeliveryAgent]{
			"name":       listing.ByString(func(a models.DeliveryAgent) string { return a.Name }),
			"zone":       listing.ByString(func(a models.DeliveryAgent) string { return a.Zone }),
			"status":     listing.ByString(func(a models.DeliveryAgent) string { return a.Status }),
			"deliveries": listing.ByInt(func(a models.DeliveryAgent) int { return a.Deliveries }),
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
		return fmt.Errorf("failed to list delivery agents: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No delivery agents found")
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

	agent, err := api.GetOne[models.DeliveryAgent](cmd.Context(), client, resource, args[0])
	if err != nil {
		return fmt.Errorf("failed to show delivery agent: %w", err)
	}

	return format.Print(agent)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	mobile, _ := cmd.Flags().GetString("mobile")
	zone, _ := cmd.Flags().GetString("zone")

	errs := utils.NewMultiError()
	errs.Add(utils.ValidateName(name, "name"))
	errs.Add(utils.ValidateMobileNumber(mobile))
	if err := errs.ErrOrNil(); err != nil {
		return err
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	payload := map[string]string{
		"name":         name,
		"mobileNumber": mobile,
	}
	if zone != "" {
		payload["zone"] = zone
	}

	agent, err := api.Create[models.DeliveryAgent](cmd.Context(), client, resource, payload)
	if err != nil {
		return fmt.Errorf("failed to create delivery agent: %w", err)
	}

	format.PrintSuccess("✓ Delivery agent '%s' registered successfully", agent.Name)
	return format.Print(agent)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	if err := client.Delete(cmd.Context(), resource, args[0]); err != nil {
		return fmt.Errorf("failed to delete delivery agent: %w", err)
	}

	format.PrintSuccess("✓ Delivery agent '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on name or mobile number")
	listCmd.Flags().String("status", "", "Filter by status (Available, Busy, Offline)")
	listCmd.Flags().String("sort", "", "Sort key (name, zone, status, deliveries)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	createCmd.Flags().String("name", "", "Agent name")
	createCmd.Flags().String("mobile", "", "Agent mobile number")
	createCmd.Flags().String("zone", "", "Delivery zone")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("mobile")

	StaffCmd.AddCommand(listCmd)
	StaffCmd.AddCommand(showCmd)
	StaffCmd.AddCommand(createCmd)
	StaffCmd.AddCommand(deleteCmd)
}
