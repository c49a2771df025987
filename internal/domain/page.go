package domain

// Default paging values used by the HTTP layer when a query parameter is absent.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PaginationParams carries page/limit values from the HTTP layer to the repo layer.
// Page is 1-indexed.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return (the page size).
	Limit int
}

// NewPaginationParams validates page and pageSize. Both must be strictly
// positive; anything else is ErrInvalidArgument.
func NewPaginationParams(page, pageSize int) (PaginationParams, error) {
	if page <= 0 || pageSize <= 0 {
		return PaginationParams{}, Fail(ErrInvalidArgument, "page and pageSize must be positive integers")
	}
	return PaginationParams{Page: page, Limit: pageSize}, nil
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total / Limit).
func (p PaginationParams) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}
