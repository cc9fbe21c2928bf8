package pagination

import "github.com/dishflow/dishflow-web/internal/models"

// windowSize is the maximum number of page buttons shown at once.
const windowSize = 5

// SortOption is one of the four sort selections exposed by the UI.
type SortOption string

const (
	SortNameAsc    SortOption = "name-asc"
	SortNameDesc   SortOption = "name-desc"
	SortRatingAsc  SortOption = "rating-asc"
	SortRatingDesc SortOption = "rating-desc"
)

// ParseSortOption maps a raw selection to a SortOption, falling back to the
// given default for anything unrecognized.
func ParseSortOption(raw string, fallback SortOption) SortOption {
	switch SortOption(raw) {
	case SortNameAsc, SortNameDesc, SortRatingAsc, SortRatingDesc:
		return SortOption(raw)
	default:
		return fallback
	}
}

// Fields splits the option into the sortBy/order pair the upstream expects.
func (s SortOption) Fields() (sortField, sortOrder string) {
	switch s {
	case SortNameAsc:
		return "name", models.OrderAsc
	case SortNameDesc:
		return "name", models.OrderDesc
	case SortRatingAsc:
		return "rating", models.OrderAsc
	case SortRatingDesc:
		return "rating", models.OrderDesc
	default:
		return "name", models.OrderAsc
	}
}

// TotalPages returns ceil(total/pageSize); zero when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Skip converts a 1-based page number into the upstream skip offset.
func Skip(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// Window computes the bounded sliding window of page numbers to display:
// all pages when five or fewer exist, the first five near the start, the
// last five near the end, and the two neighbours on each side otherwise.
func Window(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	count := windowSize
	if totalPages < windowSize {
		count = totalPages
	}

	pages := make([]int, 0, count)
	for i := 0; i < count; i++ {
		var page int
		switch {
		case totalPages <= windowSize:
			page = i + 1
		case current <= 3:
			page = i + 1
		case current >= totalPages-2:
			page = totalPages - 4 + i
		default:
			page = current - 2 + i
		}
		pages = append(pages, page)
	}
	return pages
}

// Query is the UI-level pagination and filter state for one listing view.
type Query struct {
	Search   string
	Sort     SortOption
	Page     int
	PageSize int
}

// NewQuery returns a query positioned on the first page.
func NewQuery(pageSize int, sort SortOption) Query {
	return Query{Sort: sort, Page: 1, PageSize: pageSize}
}

// WithSearch changes the search text. Any change resets to the first page;
// this is deliberate policy, not an accident of implementation.
func (q Query) WithSearch(search string) Query {
	if search != q.Search {
		q.Search = search
		q.Page = 1
	}
	return q
}

// WithSort changes the sort selection, resetting to the first page.
func (q Query) WithSort(sort SortOption) Query {
	if sort != q.Sort {
		q.Sort = sort
		q.Page = 1
	}
	return q
}

// WithPage jumps to a page, clamped to [1, totalPages]. Moving past either
// boundary is a no-op, not an error.
func (q Query) WithPage(page, totalPages int) Query {
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	q.Page = page
	return q
}

// Prev steps one page back, clamped at the first page.
func (q Query) Prev(totalPages int) Query {
	return q.WithPage(q.Page-1, totalPages)
}

// Next steps one page forward, clamped at the last page.
func (q Query) Next(totalPages int) Query {
	return q.WithPage(q.Page+1, totalPages)
}

// Filter derives the gateway filter for the current state.
func (q Query) Filter() models.ListFilter {
	sortField, sortOrder := q.Sort.Fields()
	return models.ListFilter{
		Limit:     q.PageSize,
		Skip:      Skip(q.Page, q.PageSize),
		Query:     q.Search,
		SortField: sortField,
		SortOrder: sortOrder,
	}
}
