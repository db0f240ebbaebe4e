package wallet

import (
	"context"
	"fmt"

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

const resource = "wallet/transactions"

// WalletCmd represents the wallet command
var WalletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Wallet transaction report commands",
	Long: `Wallet transaction report commands for QuickBites Admin.

This command group lists wallet transactions across the platform with
date-range filters and a running total.`,
}

// listCmd lists wallet transactions
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List wallet transactions",
	Long:  "List wallet transactions with search, type filter, date range, and sorting",
	RunE:  runList,
}

// newView builds the listing view for wallet transactions: searchable
// by user name and reference, filterable by transaction type.
func newView(client *api.Client, from, to string, limit int) *listing.View[models.WalletTransaction] {
	fetch := func(ctx context.Context, page, limit int) (*models.Page[models.WalletTransaction], error) {
		params := models.ListParams{Page: page, Limit: limit, Filter: map[string]string{}}
		if from != "" {
			params.Filter["from"] = from
		}
		if to != "" {
			params.Filter["to"] = to
		}
		return api.GetList[models.WalletTransaction](ctx, client, resource, params)
	}

	return listing.NewView(fetch, listing.Config[models.WalletTransaction]{
		SearchFields: func(t models.WalletTransaction) []string {
			return []string{t.UserName, t.Reference}
		},
		CategoryField: func(t models.WalletTransaction) string {
			return t.Type
		},
		SortKeys: map[string]listing.CompareFunc[models.WalletTransaction]{
			"user":       listing.ByString(func(t models.WalletTransaction) string { return t.UserName }),
			"type":       listing.ByString(func(t models.WalletTransaction) string { return t.Type }),
			"amount":     listing.ByDecimal(func(t models.WalletTransaction) decimal.Decimal { return t.Amount }),
			"created_at": listing.ByString(func(t models.WalletTransaction) string { return t.CreatedAt }),
		},
		PageSize: limit,
	})
}

func runList(cmd *cobra.Command, args []string) error {
	search, _ := cmd.Flags().GetString("search")
	txType, _ := cmd.Flags().GetString("type")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	errs := utils.NewMultiError()
	if from != "" {
		errs.Add(utils.ValidateDate(from, "from"))
	}
	if to != "" {
		errs.Add(utils.ValidateDate(to, "to"))
	}
	if err := errs.ErrOrNil(); err != nil {
		return err
	}

	cfg := config.Get()
	store := session.NewFileStore()
	client := api.NewClient(cfg.Server.URL, store)

	view := newView(client, from, to, limit)
	rows, err := listing.Run(cmd.Context(), view, listing.Params{
		Search:   search,
		Category: txType,
		SortKey:  sortKey,
		Desc:     desc,
		Page:     page,
	})
	if err != nil {
		return fmt.Errorf("failed to list wallet transactions: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("No wallet transactions found")
		return nil
	}

	if err := format.Print(rows); err != nil {
		return err
	}

	total := decimal.Zero
	for _, tx := range rows {
		total = total.Add(tx.Amount)
	}
	fmt.Printf("Page %d of %d (%d total), page amount %s\n", view.Page(), view.Pages(), view.Total(), total.StringFixed(2))
	return nil
}

func init() {
	listCmd.Flags().String("search", "", "Substring match on user name or reference")
	listCmd.Flags().String("type", "", "Filter by transaction type (credit, debit, refund)")
	listCmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	listCmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
	listCmd.Flags().String("sort", "", "Sort key (user, type, amount, created_at)")
	listCmd.Flags().Bool("desc", false, "Sort descending")
	listCmd.Flags().Int("page", 1, "Page number")
	listCmd.Flags().Int("limit", 20, "Page size")

	WalletCmd.AddCommand(listCmd)
}
