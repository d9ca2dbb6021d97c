// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package paginate slices an ordered result set into pages.
//
// Callers reset the current page to 1 whenever the page size, a filter or
// the sort changes, so a stale page number never points past the end.
package paginate

// Slice returns the 1-based page of items: items[(page-1)*size :
// min(page*size, len(items))]. A page below 1 is treated as 1, a page past
// the end yields an empty slice, and a size of 0 or less returns every item.
func Slice[T any](items []T, size, page int) []T {
	if size <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	if page-1 >= TotalPages(len(items), size) {
		return items[len(items):]
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}

// TotalPages returns the number of pages needed for n items. It is at least 1.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	pages := n / size
	if n%size != 0 {
		pages++
	}
	return pages
}
