package fooditems

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/quickbites/admin-cli/internal/api"
	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/listing"
	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
	"github.com/quickbites/admin-cli/internal/utils"
)

const resource = "food-items"

// FoodItemsCmd represents the fooditems command
var FoodItemsCmd = &cobra.Command{
	Use:   "fooditems",
	Short: "Menu item management commands",
	Long: `Menu item management commands for QuickBites Admin.

This command group lists the food items on restaurant menus and
supports creating, updating, and removing them.`,
}

// listCmd lists food items
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List food items",
	Long:  "List menu items with search, category filter, and sorting",
	RunE:  runList,
}

// showCmd shows one food item
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a food item",
	Long:  "Display a single menu item by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// createCmd creates a food item
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a food item",
	Long:  "Add a new item to a restaurant's menu",
	RunE:  runCreate,
}

// updateCmd updates a food item
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a food item",
	Long:  "Update fields of an existing menu item; only provided flags are sent",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd deletes a food item
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food item",
	Long:  "Remove a menu item",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

// newView builds the listing view for menu items: searchable by name,
// filterable by category.
func newView(client *api.Client, restaurant string, limit int) *listing.View[models.FoodItem] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.FoodItem], error) {
		params := models.ListParams{Page: page, Limit: limit}
		if restaurant != "" {
			params.Filter = map[string]string{"restaurant": restaurant}
		}
		return api.GetList[models.FoodItem](ctx, client, resource, params)
	}

	return listing.NewView(fetch, listing.Config[models.FoodItem]{
		SearchFields: func(i models.FoodItem) []string {
			return []string{i.Name}
		},
		CategoryField: func(i models.FoodItem) string {
			return i.Category
		},
		SortKeys: map[string]listing.CompareFunc[models.FoodItem]{
			"name":  listing.ByString(func(i models.FoodItem) string { return i.Name }),
			"price": listing.ByDecimal(func(i models.FoodItem) decimal.Decimal { return i.Price }),
		},
		PageSize: limit,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	category, _ := cmd.Flags().GetString("category")
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
		Category: category,
		SortKey:  sortKey,
		Desc:     desc,
		Page:     page,
	})
	if err != nil {
		return fmt.Errorf("failed to list food items: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No food items found")
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

	item, err := api.GetOne[models.FoodItem](cmd.Context(), client, resource, args[0])
	if err != nil {
		return fmt.Errorf("failed to show food item: %w", err)
	}

	return format.Print(item)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	restaurant, _ := cmd.Flags().GetString("restaurant")
	category, _ := cmd.Flags().GetString("category")
	price, _ := cmd.Flags().GetString("price")
	veg, _ := cmd.Flags().GetBool("veg")
	image, _ := cmd.Flags().GetString("image")

	errs := utils.NewMultiError()
	errs.Add(utils.ValidateName(name, "name"))
	errs.Add(utils.ValidateRequired(restaurant, "restaurant"))
	errs.Add(utils.ValidateRequired(category, "category"))
	amount, err := utils.ValidatePrice(price)
	errs.Add(err)
	if err := errs.ErrOrNil(); err != nil {
		return err
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	fields := map[string]string{
		"name":       name,
		"restaurant": restaurant,
		"category":   category,
		"price":      amount.String(),
		"isVeg":      strconv.FormatBool(veg),
	}

	var item *models.FoodItem
	if image != "" {
		item, err = api.CreateMultipart[models.FoodItem](cmd.Context(), client, resource, fields, map[string]string{"image": image})
	} else {
		item, err = api.Create[models.FoodItem](cmd.Context(), client, resource, fields)
	}
	if err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}

	format.PrintSuccess("✓ Food item '%s' created successfully", item.Name)
	return format.Print(item)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	fields := map[string]string{}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		fields["name"] = name
	}
	if cmd.Flags().Changed("category") {
		category, _ := cmd.Flags().GetString("category")
		fields["category"] = category
	}
	if cmd.Flags().Changed("price") {
		price, _ := cmd.Flags().GetString("price")
		amount, err := utils.ValidatePrice(price)
		if err != nil {
			return err
		}
		fields["price"] = amount.String()
	}
	if cmd.Flags().Changed("available") {
		available, _ := cmd.Flags().GetBool("available")
		fields["isAvailable"] = strconv.FormatBool(available)
	}
	if cmd.Flags().Changed("veg") {
		veg, _ := cmd.Flags().GetBool("veg")
		fields["isVeg"] = strconv.FormatBool(veg)
	}
	image, _ := cmd.Flags().GetString("image")

	if len(fields) == 0 && image == "" {
		return fmt.Errorf("nothing to update")
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	var item *models.FoodItem
	var err error
	if image != "" {
		item, err = api.UpdateMultipart[models.FoodItem](cmd.Context(), client, resource, id, fields, map[string]string{"image": image})
	} else {
		item, err = api.Update[models.FoodItem](cmd.Context(), client, resource, id, fields)
	}
	if err != nil {
		return fmt.Errorf("failed to update food item: %w", err)
	}

	format.PrintSuccess("✓ Food item '%s' updated successfully", item.Name)
	return format.Print(item)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	if err := client.Delete(cmd.Context(), resource, args[0]); err != nil {
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	format.PrintSuccess("✓ Food item '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on item name")
	listCmd.Flags().String("category", "", "Filter by menu category")
	listCmd.Flags().String("restaurant", "", "Restrict to one restaurant's menu")
	listCmd.Flags().String("sort", "", "Sort key (name, price)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	createCmd.Flags().String("name", "", "Item name")
	createCmd.Flags().String("restaurant", "", "Restaurant identifier")
	createCmd.Flags().String("category", "", "Menu category")
	createCmd.Flags().String("price", "", "Item price")
	createCmd.Flags().Bool("veg", false, "Vegetarian item")
	createCmd.Flags().String("image", "", "Path to an item image file")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("restaurant")
	createCmd.MarkFlagRequired("category")
	createCmd.MarkFlagRequired("price")

	updateCmd.Flags().String("name", "", "Item name")
	updateCmd.Flags().String("category", "", "Menu category")
	updateCmd.Flags().String("price", "", "Item price")
	updateCmd.Flags().Bool("available", true, "Item availability")
	updateCmd.Flags().Bool("veg", false, "Vegetarian item")
	updateCmd.Flags().String("image", "", "Path to an item image file")

	FoodItemsCmd.AddCommand(listCmd)
	FoodItemsCmd.AddCommand(showCmd)
	FoodItemsCmd.AddCommand(createCmd)
	FoodItemsCmd.AddCommand(updateCmd)
	FoodItemsCmd.AddCommand(deleteCmd)
}
