package categories

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quickbites/admin-cli/internal/api"
	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/format"
	"github.com/quickbites/admin-cli/internal/listing"
	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
	"github.com/quickbites/admin-cli/internal/utils"
)

const resource = "categories"

// CategoriesCmd represents the categories command
var CategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Menu category management commands",
	Long: `Menu category management commands for QuickBites Admin.

This command group lists menu categories and supports creating,
updating, and removing them.`,
}

// listCmd lists categories
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List menu categories",
	Long:  "List menu categories with search and sorting",
	RunE:  runList,
}

// createCmd creates a category
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a menu category",
	Long:  "Create a new menu category with the specified name",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

// updateCmd updates a category
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a menu category",
	Long:  "Rename a category or toggle whether it is active",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpdate,
}

// deleteCmd deletes a category
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a menu category",
	Long:  "Remove an existing menu category",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func newView(client *api.Client, limit int) *listing.View[models.Category] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.Category], error) {
		return api.GetList[models.Category](ctx, client, resource, models.ListParams{Page: page, Limit: limit})
	}

	return listing.NewView(fetch, listing.Config[models.Category]{
		SearchFields: func(c models.Category) []string {
			return []string{c.Name}
		},
		SortKeys: map[string]listing.CompareFunc[models.Category]{
			"name": listing.ByString(func(c models.Category) string { return c.Name }),
		},
		PageSize: limit,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	view := newView(client, limit)
	rows, err := listing.Run(cmd.Context(), view, listing.Params{
		Search:  search,
		SortKey: sortKey,
		Desc:    desc,
		Page:    page,
	})
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	if err := format.Print(rows); err != nil {
		return err
	}
	fmt.Printf("Page %d of %d (%d total)\n", view.Page(), view.Pages(), view.Total())
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	image, _ := cmd.Flags().GetString("image")

	if err := utils.ValidateName(name, "name"); err != nil {
		return err
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	fields := map[string]string{"name": name}

	var category *models.Category
	var err error
	if image != "" {
		category, err = api.CreateMultipart[models.Category](cmd.Context(), client, resource, fields, map[string]string{"image": image})
	} else {
		category, err = api.Create[models.Category](cmd.Context(), client, resource, fields)
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	format.PrintSuccess("✓ Category '%s' created successfully", category.Name)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	fields := map[string]string{}
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		if err := utils.ValidateName(name, "name"); err != nil {
			return err
		}
		fields["name"] = name
	}
	if cmd.Flags().Changed("active") {
		active, _ := cmd.Flags().GetBool("active")
		fields["isActive"] = strconv.FormatBool(active)
	}

	if len(fields) == 0 {
		return fmt.Errorf("nothing to update")
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	category, err := api.Update[models.Category](cmd.Context(), client, resource, id, fields)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	format.PrintSuccess("✓ Category '%s' updated successfully", category.Name)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	if err := client.Delete(cmd.Context(), resource, args[0]); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	format.PrintSuccess("✓ Category '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on category name")
	listCmd.Flags().String("sort", "", "Sort key (name)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	createCmd.Flags().String("image", "", "Path to a category image file")

	updateCmd.Flags().String("name", "", "Category name")
	updateCmd.Flags().Bool("active", true, "Whether the category is active")

	CategoriesCmd.AddCommand(listCmd)
	CategoriesCmd.AddCommand(createCmd)
	CategoriesCmd.AddCommand(updateCmd)
	CategoriesCmd.AddCommand(deleteCmd)
}
