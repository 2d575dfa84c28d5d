package models

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams is a validated page/limit pair. Construct via NewPageParams;
// the zero value is not meaningful.
type PageParams struct {
	Page  int
	Limit int
}

// NewPageParams validates pagination input. Zero means "not provided" and
// falls back to the default; anything else outside the accepted range is
// rejected rather than clamped.
func NewPageParams(page, limit int) (PageParams, error) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if page < 1 {
		return PageParams{}, NewValidationError("page must be at least 1")
	}
	if limit < 1 || limit > MaxLimit {
		return PageParams{}, NewValidationError("limit must be between 1 and 100")
	}
	return PageParams{Page: page, Limit: limit}, nil
}

// Offset returns the number of rows to skip for this page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// Page is the envelope every paged listing returns.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage wraps a result slice and total count in a pagination envelope.
// An empty page past the end of the data is valid.
func NewPage[T any](data []T, total int64, params PageParams) Page[T] {
	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data: data,
		Meta: PageMeta{
			Total:           total,
			Page:            params.Page,
			Limit:           params.Limit,
			TotalPages:      totalPages,
			HasNextPage:     params.Page < totalPages,
			HasPreviousPage: params.Page > 1,
		},
	}
}
