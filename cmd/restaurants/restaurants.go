package restaurants

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

const resource = "restaurants"

// RestaurantsCmd represents the restaurants command
var RestaurantsCmd = &cobra.Command{
	Use:   "restaurants",
	Short: "Restaurant management commands",
	Long: `Restaurant management commands for QuickBites Admin.

This command group lists partner restaurants and supports creating,
updating, and removing them.`,
}

// listCmd lists restaurants
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List restaurants",
	Long:  "List partner restaurants with search, status filter, and sorting",
	RunE:  runList,
}

// showCmd shows one restaurant
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a restaurant",
	Long:  "Display a single restaurant by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// createCmd creates a restaurant
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a restaurant",
	Long:  "Register a new partner restaurant",
	RunE:  runCreate,
}

// updateCmd updates a restaurant
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a restaurant",
	Long:  "Update fields of an existing restaurant; only provided flags are sent",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd deletes a restaurant
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a restaurant",
	Long:  "Remove a restaurant from the platform",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// newView builds the listing view for restaurants: searchable by name
// and area, filterable by status.
func newView(client *api.Client, limit int) *listing.View[models.Restaurant] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.Restaurant], error) {
		return api.GetList[models.Restaurant](ctx, client, resource, models.ListParams{Page: page, Limit: limit})
	}

	return listing.NewView(fetch, listing.Config[models.Restaurant]{
		SearchFields: func(r models.Restaurant) []string {
			return []string{r.Name, r.Area}
		},
		CategoryField: func(r models.Restaurant) string {
			return r.Status
		},
		SortKeys: map[string]listing.CompareFunc[models.Restaurant]{
			"name":   listing.ByString(func(r models.Restaurant) string { return r.Name }),
			"area":   listing.ByString(func(r models.Restaurant) string { return r.Area }),
			"status": listing.ByString(func(r models.Restaurant) string { return r.Status }),
			"rating": listing.ByNumber(func(r models.Restaurant) float64 { return r.Rating }),
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
		return fmt.Errorf("failed to list restaurants: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No restaurants found")
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

	restaurant, err := api.GetOne[models.Restaurant](cmd.Context(), client, resource, args[0])
	if err != nil {
		return fmt.Errorf("failed to show restaurant: %w", err)
	}

	return format.Print(restaurant)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	area, _ := cmd.Flags().GetString("area")
	address, _ := cmd.Flags().GetString("address")
	mobile, _ := cmd.Flags().GetString("mobile")
	cuisine, _ := cmd.Flags().GetString("cuisine")
	image, _ := cmd.Flags().GetString("image")

	errs := utils.NewMultiError()
	errs.Add(utils.ValidateName(name, "name"))
	errs.Add(utils.ValidateRequired(area, "area"))
	if mobile != "" {
		errs.Add(utils.ValidateMobileNumber(mobile))
	}
	if err := errs.ErrOrNil(); err != nil {
		return err
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	fields := map[string]string{
		"name":         name,
		"area":         area,
		"address":      address,
		"mobileNumber": mobile,
		"cuisine":      cuisine,
	}

	restaurant, err := createRestaurant(cmd.Context(), client, fields, image)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	format.PrintSuccess("✓ Restaurant '%s' created successfully", restaurant.Name)
	return format.Print(restaurant)
}

// createRestaurant posts the new restaurant, using multipart encoding
// when an image file accompanies the fields.
func createRestaurant(ctx context.Context, client *api.Client, fields map[string]string, image string) (*models.Restaurant, error) {
	if image != "" {
		return api.CreateMultipart[models.Restaurant](ctx, client, resource, fields, map[string]string{"image": image})
	}

	payload := map[string]string{}
	for key, value := range fields {
		if value != "" {
			payload[key] = value
		}
	}
	return api.Create[models.Restaurant](ctx, client, resource, payload)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	fields := map[string]string{}
	for flag, key := range map[string]string{
		"name":    "name",
		"area":    "area",
		"address": "address",
		"mobile":  "mobileNumber",
		"cuisine": "cuisine",
		"status":  "status",
	} {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			fields[key] = value
		}
	}
	image, _ := cmd.Flags().GetString("image")

	if len(fields) == 0 && image == "" {
		return fmt.Errorf("nothing to update")
	}

	if mobile, ok := fields["mobileNumber"]; ok {
		if err := utils.ValidateMobileNumber(mobile); err != nil {
			return err
		}
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	var restaurant *models.Restaurant
	var err error
	if image != "" {
		restaurant, err = api.UpdateMultipart[models.Restaurant](cmd.Context(), client, resource, id, fields, map[string]string{"image": image})
	} else {
		restaurant, err = api.Update[models.Restaurant](cmd.Context(), client, resource, id, fields)
	}
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	format.PrintSuccess("✓ Restaurant '%s' updated successfully", restaurant.Name)
	return format.Print(restaurant)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	if err := client.Delete(cmd.Context(), resource, args[0]); err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}

	format.PrintSuccess("✓ Restaurant '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on name or area")
	listCmd.Flags().String("status", "", "Filter by status (Active, Inactive)")
	listCmd.Flags().String("sort", "", "Sort key (name, area, status, rating)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	createCmd.Flags().String("name", "", "Restaurant name")
	createCmd.Flags().String("area", "", "Service area")
	createCmd.Flags().String("address", "", "Street address")
	createCmd.Flags().String("mobile", "", "Contact mobile number")
	createCmd.Flags().String("cuisine", "", "Cuisine type")
	createCmd.Flags().String("image", "", "Path to a cover image file")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("area")

	updateCmd.Flags().String("name", "", "Restaurant name")
	updateCmd.Flags().String("area", "", "Service area")
	updateCmd.Flags().String("address", "", "Street address")
	updateCmd.Flags().String("mobile", "", "Contact mobile number")
	updateCmd.Flags().String("cuisine", "", "Cuisine type")
	updateCmd.Flags().String("status", "", "Status (Active, Inactive)")
	updateCmd.Flags().String("image", "", "Path to a cover image file")

	RestaurantsCmd.AddCommand(listCmd)
	RestaurantsCmd.AddCommand(showCmd)
	RestaurantsCmd.AddCommand(createCmd)
	RestaurantsCmd.AddCommand(updateCmd)
	RestaurantsCmd.AddCommand(deleteCmd)
}
