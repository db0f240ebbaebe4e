package listing

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/admin-cli/internal/models"
)

type member struct {
	Name   string
	Status string
	Rank   int
}

func memberConfig() Config[member] {
	return Config[member]{
		SearchFields: func(m member) []string {
			return []string{m.Name}
		},
		CategoryField: func(m member) string {
			return m.Status
		},
		SortKeys: map[string]CompareFunc[member]{
			"name": ByString(func(m member) string { return m.Name }),
			"rank": ByInt(func(m member) int { return m.Rank }),
		},
	}
}

// staticFetcher serves a fixed collection and counts calls
func staticFetcher(items []member, pages int) (Fetcher[member], *int) {
	calls := 0
	fetch := func(ctx context.Context, page, limit int) (*models.Page[member], error) {
		calls++
		return &models.Page[member]{Items: items, Page: page, Pages: pages, Total: len(items)}, nil
	}
	return fetch, &calls
}

func fetchedView(t *testing.T, items []member) *View[member] {
	t.Helper()
	fetch, _ := staticFetcher(items, 1)
	v := NewView(fetch, memberConfig())
	require.NoError(t, v.Fetch(context.Background()))
	require.Equal(t, Ready, v.State())
	return v
}

func names(rows []member) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestSearchFiltersCaseInsensitively(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Alice", Status: "Active"},
		{Name: "Bob", Status: "Inactive"},
	})

	v.SetSearchTerm("ali")
	require.Equal(t, []string{"Alice"}, names(v.Rows()))

	v.SetSearchTerm("")
	require.Len(t, v.Rows(), 2)
}

func TestCategoryFilterMatchesExactly(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Alice", Status: "Active"},
		{Name: "Bob", Status: "Inactive"},
	})

	v.SetCategoryFilter("Inactive")
	require.Equal(t, []string{"Bob"}, names(v.Rows()))

	// "All" disables the filter.
	v.SetCategoryFilter("All")
	require.Len(t, v.Rows(), 2)
}

func TestFilteredResultIsSubsetWithSubstring(t *testing.T) {
	items := []member{
		{Name: "Spice Villa", Status: "Active"},
		{Name: "Curry House", Status: "Active"},
		{Name: "Villa Roma", Status: "Inactive"},
		{Name: "Noodle Bar", Status: "Active"},
	}
	v := fetchedView(t, items)

	v.SetSearchTerm("villa")
	rows := v.Rows()
	require.Len(t, rows, 2)
	for _, r := range rows {
		require.Contains(t, []string{"Spice Villa", "Villa Roma"}, r.Name)
	}
}

func TestSearchAndCategoryCompose(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Spice Villa", Status: "Active"},
		{Name: "Villa Roma", Status: "Inactive"},
	})

	v.SetSearchTerm("villa")
	v.SetCategoryFilter("Inactive")
	require.Equal(t, []string{"Villa Roma"}, names(v.Rows()))
}

func TestTriStateSortCycle(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Bob"},
		{Name: "Alice"},
	})

	v.RequestSort("name")
	require.Equal(t, []string{"Alice", "Bob"}, names(v.Rows()))

	v.RequestSort("name")
	require.Equal(t, []string{"Bob", "Alice"}, names(v.Rows()))

	// Third click clears the sort; original fetch order comes back.
	v.RequestSort("name")
	key, dir := v.Sort()
	require.Equal(t, "", key)
	require.Equal(t, None, dir)
	require.Equal(t, []string{"Bob", "Alice"}, names(v.Rows()))
}

func TestNewSortKeyResetsToAscending(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Bob", Rank: 1},
		{Name: "Alice", Rank: 2},
	})

	v.RequestSort("name")
	v.RequestSort("name") // descending
	v.RequestSort("rank")

	key, dir := v.Sort()
	require.Equal(t, "rank", key)
	require.Equal(t, Ascending, dir)
	require.Equal(t, []string{"Bob", "Alice"}, names(v.Rows()))
}

func TestSortReverseSymmetry(t *testing.T) {
	v := fetchedView(t, []member{
		{Rank: 3}, {Rank: 1}, {Rank: 4}, {Rank: 2},
	})

	v.RequestSort("rank")
	asc := v.Rows()
	v.RequestSort("rank")
	desc := v.Rows()

	require.Len(t, desc, len(asc))
	for i := range asc {
		require.Equal(t, asc[i].Rank, desc[len(desc)-1-i].Rank)
	}
}

func TestUnknownSortKeyIgnored(t *testing.T) {
	v := fetchedView(t, []member{{Name: "Alice"}})

	v.RequestSort("flavor")
	key, dir := v.Sort()
	require.Equal(t, "", key)
	require.Equal(t, None, dir)
	require.False(t, v.CanSort("flavor"))
}

func TestChangePageBounds(t *testing.T) {
	fetch, calls := staticFetcher([]member{{Name: "Alice"}}, 3)
	v := NewView(fetch, memberConfig())
	require.NoError(t, v.Fetch(context.Background()))
	require.Equal(t, 1, *calls)
	require.Equal(t, 3, v.Pages())

	// Out-of-range pages leave the page unchanged and issue no fetch.
	require.NoError(t, v.ChangePage(context.Background(), 0))
	require.Equal(t, 1, v.Page())
	require.Equal(t, 1, *calls)

	require.NoError(t, v.ChangePage(context.Background(), 4))
	require.Equal(t, 1, v.Page())
	require.Equal(t, 1, *calls)

	require.NoError(t, v.ChangePage(context.Background(), 2))
	require.Equal(t, 2, v.Page())
	require.Equal(t, 2, *calls)
}

func TestFetchFailureRetainsPriorRows(t *testing.T) {
	fail := false
	items := []member{{Name: "Alice"}}
	fetch := func(ctx context.Context, page, limit int) (*models.Page[member], error) {
		if fail {
			return nil, fmt.Errorf("backend unreachable")
		}
		return &models.Page[member]{Items: items, Page: 1, Pages: 1, Total: 1}, nil
	}

	v := NewView(fetch, memberConfig())
	require.NoError(t, v.Fetch(context.Background()))

	fail = true
	require.Error(t, v.Fetch(context.Background()))
	require.Equal(t, Errored, v.State())
	require.Equal(t, "backend unreachable", v.ErrorMessage())
	require.Equal(t, []string{"Alice"}, names(v.Rows()))
}

func TestDeleteSuccessSplicesRow(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Alice"},
		{Name: "Bob"},
	})

	err := v.Delete(context.Background(),
		func(ctx context.Context) error { return nil },
		func(m member) bool { return m.Name == "Alice" },
	)
	require.NoError(t, err)
	require.Equal(t, []string{"Bob"}, names(v.Rows()))
	require.Equal(t, 1, v.Total())
}

func TestDeleteFailureLeavesRowsUntouched(t *testing.T) {
	v := fetchedView(t, []member{
		{Name: "Alice"},
		{Name: "Bob"},
	})

	err := v.Delete(context.Background(),
		func(ctx context.Context) error { return fmt.Errorf("forbidden") },
		func(m member) bool { return m.Name == "Alice" },
	)
	require.Error(t, err)
	require.Len(t, v.Rows(), 2)
	require.Equal(t, 2, v.Total())
}

func TestStaleResponseDiscarded(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	call := 0
	fetch := func(ctx context.Context, page, limit int) (*models.Page[member], error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()

		if n == 1 {
			close(entered)
			<-release
			return &models.Page[member]{Items: []member{{Name: "Old"}}, Page: 1, Pages: 1, Total: 1}, nil
		}
		return &models.Page[member]{Items: []member{{Name: "New"}}, Page: 1, Pages: 1, Total: 1}, nil
	}

	v := NewView(fetch, memberConfig())

	done := make(chan struct{})
	go func() {
		defer close(done)
		v.Fetch(context.Background())
	}()

	<-entered
	require.NoError(t, v.Fetch(context.Background()))
	require.Equal(t, []string{"New"}, names(v.Rows()))

	// The first response arrives late and must not overwrite the newer one.
	close(release)
	<-done
	require.Equal(t, []string{"New"}, names(v.Rows()))
	require.Equal(t, Ready, v.State())
}

func TestRunRejectsUnknownSortKey(t *testing.T) {
	fetch, _ := staticFetcher([]member{{Name: "Alice"}}, 1)
	v := NewView(fetch, memberConfig())

	_, err := Run(context.Background(), v, Params{SortKey: "flavor"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "flavor")
}

func TestRunAppliesControls(t *testing.T) {
	fetch, _ := staticFetcher([]member{
		{Name: "Bob", Status: "Active"},
		{Name: "Alice", Status: "Active"},
		{Name: "Mallory", Status: "Banned"},
	}, 1)
	v := NewView(fetch, memberConfig())

	rows, err := Run(context.Background(), v, Params{
		Category: "Active",
		SortKey:  "name",
		Desc:     true,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Bob", "Alice"}, names(rows))
}
