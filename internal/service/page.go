package service

// Page: одна страница выборки.
type Page[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Pages    int
	Total    int64
}

// paginate clamps page into [1, pages] and returns it with the row offset.
// An empty result still has one (empty) page.
func paginate(total int64, page, size int) (clamped, offset, pages int) {
	pages = int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	clamped = page
	if clamped < 1 {
		clamped = 1
	}
	if clamped > pages {
		clamped = pages
	}
	return clamped, (clamped - 1) * size, pages
}
