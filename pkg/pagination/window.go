package pagination

// Window converts a 1-based page number into an offset/limit pair. Pages
// below 1 are treated as page 1.
func Window(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 0 {
		size = 0
	}
	return (page - 1) * size, size
}

// Slice returns the window of items for page and whether items remain
// beyond it.
func Slice[T any](items []T, page, size int) ([]T, bool) {
	offset, limit := Window(page, size)
	if offset >= len(items) {
		return nil, false
	}
	end := offset + limit
	if end >= len(items) {
		return items[offset:], false
	}
	return items[offset:end], true
}
