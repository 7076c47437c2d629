package domain

// Pagination does the page math for a result set. The page is deliberately
// not clamped to the valid range: requesting a page past the end yields an
// empty data slice inside a well-formed envelope, never an error.
type Pagination struct {
	Total int
	Page  int
	Limit int
}

// TotalPages is ceil(Total / Limit). A total of zero yields zero pages;
// the same convention is applied on the live and the fallback path.
func (p Pagination) TotalPages() int {
	if p.Limit <= 0 || p.Total <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}

// Offset is the row offset of the requested page.
func (p Pagination) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// PageResult is the paginated listing envelope returned by the listing
// service, on both the live and the degraded path.
type PageResult struct {
	Data       []Property `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

// NewPageResult assembles a PageResult from fetched rows and the matching
// row count. Data is never nil.
func NewPageResult(data []Property, total, page, limit int) *PageResult {
	if data == nil {
		data = []Property{}
	}
	return &PageResult{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: Pagination{Total: total, Page: page, Limit: limit}.TotalPages(),
	}
}
