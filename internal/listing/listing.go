// Package listing implements the generic collection view shared by
// every resource screen: fetch one page from the backend, narrow it
// with a free-text search and a category filter, order it by a single
// sortable key with a tri-state direction, and expose the result for
// rendering. The stages always run in that sequence and recompute in
// full on every state change; collections are small enough that this
// is the simplest correct thing.
package listing

import (
	"context"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/quickbites/admin-cli/internal/models"
)

// Direction is the active sort direction
type Direction int

const (
	// None leaves rows in original fetch order
	None Direction = iota
	// Ascending orders smallest first
	Ascending
	// Descending orders largest first
	Descending
)

// State is the visible state of a view
type State int

const (
	// Loading means the initial fetch (or a re-fetch) is in flight
	Loading State = iota
	// Ready means a collection is held, possibly with zero rows
	Ready
	// Errored means the last fetch failed; prior rows are retained
	Errored
)

// CompareFunc orders two records for one sortable key
type CompareFunc[T any] func(a, b T) int

// Fetcher loads one page of the bound collection
type Fetcher[T any] func(ctx context.Context, page, limit int) (*models.Page[T], error)

// Config parameterizes a view for one record shape
type Config[T any] struct {
	// SearchFields selects the values the free-text search matches
	SearchFields func(T) []string
	// CategoryField selects the value the equality filter tests; nil
	// disables category filtering
	CategoryField func(T) string
	// SortKeys maps sortable key names to comparators
	SortKeys map[string]CompareFunc[T]
	// PageSize is the requested page size; 0 falls back to 20
	PageSize int
}

// View is a searchable, filterable, sortable, paginated collection view
type View[T any] struct {
	mu    sync.Mutex
	cfg   Config[T]
	fetch Fetcher[T]

	records []T
	page    int
	pages   int
	total   int

	search   string
	category string
	sortKey  string
	dir      Direction

	state  State
	errMsg string

	// seq tags in-flight fetches; a response whose tag has been
	// superseded is discarded so the latest request always wins.
	seq atomic.Uint64
}

// NewView creates a view over a fetcher. The view starts in Loading
// with an empty collection; call Fetch to populate it.
func NewView[T any](fetch Fetcher[T], cfg Config[T]) *View[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	return &View[T]{
		cfg:   cfg,
		fetch: fetch,
		page:  1,
		pages: 1,
		state: Loading,
	}
}

// Fetch loads the current page. On success the held collection and
// pagination metadata are replaced wholesale; on failure the prior
// collection is left untouched and the error message is retained for
// display. A response that arrives after a newer Fetch started is
// dropped.
func (v *View[T]) Fetch(ctx context.Context) error {
	id := v.seq.Add(1)

	v.mu.Lock()
	v.state = Loading
	page := v.page
	limit := v.cfg.PageSize
	v.mu.Unlock()

	result, err := v.fetch(ctx, page, limit)

	v.mu.Lock()
	defer v.mu.Unlock()

	if id != v.seq.Load() {
		// Superseded by a newer fetch.
		return nil
	}

	if err != nil {
		v.state = Errored
		v.errMsg = err.Error()
		return err
	}

	v.records = result.Items
	v.page = result.Page
	v.pages = result.Pages
	v.total = result.Total
	if v.page < 1 {
		v.page = 1
	}
	if v.pages < 1 {
		v.pages = 1
	}
	v.state = Ready
	v.errMsg = ""
	return nil
}

// SetSearchTerm updates the free-text filter
func (v *View[T]) SetSearchTerm(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

// SetCategoryFilter updates the equality filter; "" and "All" disable it
func (v *View[T]) SetCategoryFilter(value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = value
}

// RequestSort advances the sort state for a key: a new key starts
// ascending, repeating a key cycles ascending, descending, then back to
// no active sort. Unknown keys are ignored.
func (v *View[T]) RequestSort(key string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.cfg.SortKeys[key]; !ok {
		return
	}

	if v.sortKey != key {
		v.sortKey = key
		v.dir = Ascending
		return
	}

	switch v.dir {
	case Ascending:
		v.dir = Descending
	case Descending:
		v.sortKey = ""
		v.dir = None
	default:
		v.dir = Ascending
	}
}

// Sort returns the active sort key and direction
func (v *View[T]) Sort() (string, Direction) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sortKey, v.dir
}

// SortKeys returns the names of the sortable keys
func (v *View[T]) SortKeys() []string {
	keys := make([]string, 0, len(v.cfg.SortKeys))
	for key := range v.cfg.SortKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CanSort reports whether a key is sortable
func (v *View[T]) CanSort(key string) bool {
	_, ok := v.cfg.SortKeys[key]
	return ok
}

// Rows returns the filtered, sorted projection of the held collection.
// With no active sort the original fetch order is preserved.
func (v *View[T]) Rows() []T {
	v.mu.Lock()
	defer v.mu.Unlock()

	rows := make([]T, 0, len(v.records))
	for _, record := range v.records {
		if v.matches(record) {
			rows = append(rows, record)
		}
	}

	if v.sortKey == "" || v.dir == None {
		return rows
	}

	cmp := v.cfg.SortKeys[v.sortKey]
	sort.SliceStable(rows, func(i, j int) bool {
		c := cmp(rows[i], rows[j])
		if v.dir == Descending {
			return c > 0
		}
		return c < 0
	})

	return rows
}

// matches implements the filter stage: the record passes when the
// search term is empty or a case-insensitive substring of at least one
// searchable field, AND the category filter is off or exactly equal to
// the designated field. Caller holds v.mu.
func (v *View[T]) matches(record T) bool {
	if v.search != "" && v.cfg.SearchFields != nil {
		term := strings.ToLower(v.search)
		found := false
		for _, field := range v.cfg.SearchFields(record) {
			if strings.Contains(strings.ToLower(field), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if v.category != "" && !strings.EqualFold(v.category, "All") && v.cfg.CategoryField != nil {
		if v.cfg.CategoryField(record) != v.category {
			return false
		}
	}

	return true
}

// FetchPage loads a specific page directly, for when a page number is
// requested up front and the total page count is not yet known. Values
// below 1 are clamped to 1; the backend clamps the upper bound.
func (v *View[T]) FetchPage(ctx context.Context, n int) error {
	v.mu.Lock()
	if n < 1 {
		n = 1
	}
	v.page = n
	v.mu.Unlock()

	return v.Fetch(ctx)
}

// ChangePage moves to page n and re-fetches. Values outside
// [1, totalPages] leave the current page unchanged and issue no fetch.
func (v *View[T]) ChangePage(ctx context.Context, n int) error {
	v.mu.Lock()
	if n < 1 || n > v.pages {
		v.mu.Unlock()
		return nil
	}
	v.page = n
	v.mu.Unlock()

	return v.Fetch(ctx)
}

// Delete runs a removal call and, on success, splices matching rows out
// of the held collection. On failure the collection is untouched.
func (v *View[T]) Delete(ctx context.Context, remove func(context.Context) error, match func(T) bool) error {
	if err := remove(ctx); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	kept := v.records[:0]
	removed := 0
	for _, record := range v.records {
		if match(record) {
			removed++
			continue
		}
		kept = append(kept, record)
	}
	v.records = kept
	v.total -= removed
	if v.total < 0 {
		v.total = 0
	}
	return nil
}

// State returns the visible view state
func (v *View[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// ErrorMessage returns the message from the last failed fetch
func (v *View[T]) ErrorMessage() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}

// Page returns the current page number
func (v *View[T]) Page() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Pages returns the total page count
func (v *View[T]) Pages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pages
}

// Total returns the backend's total record count
func (v *View[T]) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}
