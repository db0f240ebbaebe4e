package listing

import (
	"context"
	"fmt"
	"strings"
)

// Params captures the list-command controls shared by every resource
// screen: the search box, the category dropdown, the sort header, and
// the requested page.
type Params struct {
	Search   string
	Category string
	SortKey  string
	Desc     bool
	Page     int
}

// Run applies the controls to a view, performs the fetch, and returns
// the rows to render.
func Run[T any](ctx context.Context, view *View[T], p Params) ([]T, error) {
	view.SetSearchTerm(p.Search)
	view.SetCategoryFilter(p.Category)

	if p.SortKey != "" {
		if !view.CanSort(p.SortKey) {
			return nil, fmt.Errorf("cannot sort by %q (sortable: %s)", p.SortKey, strings.Join(view.SortKeys(), ", "))
		}
		view.RequestSort(p.SortKey)
		if p.Desc {
			view.RequestSort(p.SortKey)
		}
	}

	if err := view.FetchPage(ctx, p.Page); err != nil {
		return nil, err
	}

	return view.Rows(), nil
}
