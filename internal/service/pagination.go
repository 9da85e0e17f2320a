package service

const (
	defaultPageSize = 10
	maxPageSize     = 20
)

// ListParams carries pagination and search parameters for list endpoints.
type ListParams struct {
	Page     int
	PageSize int
	Search   string
}

// normalize clamps page and page size to their allowed ranges and returns
// the resulting offset.
func (p ListParams) normalize() (page, size, offset int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	size = p.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size, (page - 1) * size
}

// pageLinks computes next/previous page numbers for a result envelope.
func pageLinks(page, size int, count int64) (next, previous *int) {
	if int64(page*size) < count {
		n := page + 1
		next = &n
	}
	if page > 1 {
		p := page - 1
		previous = &p
	}
	return next, previous
}
