package dto

// PageInfo is the pagination block of the hall of fame and internship listings.
// CurrentPage and ItemsPerPage echo the effective values, not the raw query input.
type PageInfo struct {
	TotalItems   int64 `json:"totalItems" example:"10"`
	TotalPages   int   `json:"totalPages" example:"2"`
	CurrentPage  int   `json:"currentPage" example:"1"`
	ItemsPerPage int   `json:"itemsPerPage" example:"6"`
	HasNextPage  bool  `json:"hasNextPage" example:"true"`
	HasPrevPage  bool  `json:"hasPrevPage" example:"false"`
}

// CompactPagination is the {total,page,limit,pages} block used by the mentorship listing
type CompactPagination struct {
	Total int64 `json:"total" example:"7"`
	Page  int   `json:"page" example:"1"`
	Limit int   `json:"limit" example:"3"`
	Pages int   `json:"pages" example:"3"`
}

// NewCompactPagination reshapes a PageInfo
func NewCompactPagination(info PageInfo) CompactPagination {
	return CompactPagination{
		Total: info.TotalItems,
		Page:  info.CurrentPage,
		Limit: info.ItemsPerPage,
		Pages: info.TotalPages,
	}
}

// ListMeta wraps a pagination block under "pagination"
type ListMeta struct {
	Pagination interface{} `json:"pagination"`
}
