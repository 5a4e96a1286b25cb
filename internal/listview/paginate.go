package listview

// Page limits.
const (
	DefaultPageSize = 6
	MinPage         = 1
)

// Paginate returns the 1-indexed page [(page-1)*size, page*size) clipped to the
// available items. Pages past the end, page < 1 and size <= 0 all yield an empty
// slice. The result is a copy.
func Paginate[T any](items []T, page, size int) []T {
	if page < MinPage || size <= 0 {
		return []T{}
	}

	// Compare before multiplying so huge page numbers cannot overflow
	if page-1 > len(items)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// PageCursor tracks the current page. The previous page is derived, so the two
// always move in lockstep.
type PageCursor struct {
	Current int
}

// FirstPage returns a cursor on page 1
func FirstPage() PageCursor {
	return PageCursor{Current: MinPage}
}

// Previous returns the page before Current (0 on the first page)
func (c PageCursor) Previous() int {
	return c.Current - 1
}

// Forward advances one page with no upper bound
func (c PageCursor) Forward() PageCursor {
	return PageCursor{Current: c.Current + 1}
}

// Back retreats one page, stopping at MinPage
func (c PageCursor) Back() PageCursor {
	if c.Current <= MinPage {
		return PageCursor{Current: MinPage}
	}
	return PageCursor{Current: c.Current - 1}
}

// PageMeta contains metadata about a paginated collection.
type PageMeta struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
	TotalItems  int
	HasPrevious bool
	HasNext     bool
}

// NewPageMeta computes page metadata for totalItems split into pages of pageSize.
func NewPageMeta(totalItems, currentPage, pageSize int) PageMeta {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if currentPage < MinPage {
		currentPage = MinPage
	}

	totalPages := (totalItems + pageSize - 1) / pageSize

	return PageMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: currentPage > MinPage,
		HasNext:     currentPage < totalPages,
	}
}
