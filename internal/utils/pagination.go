package utils

// TotalPages returns the page count for count rows, never less than one
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// ClampPage clamps page into [1, TotalPages(count, pageSize)] and returns it with the total
func ClampPage(page, count, pageSize int) (int, int) {
	total := TotalPages(count, pageSize)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	return page, total
}

// PageOffset returns the row offset of a 1-based page
func PageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}
