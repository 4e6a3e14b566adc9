package view

import "github.com/Mystogan321/useradmin/internal/users"

// Page returns the half-open slice [(page-1)*size, (page-1)*size+size) of
// the queried view, clamped to the available length. An out-of-range page is
// not an error: it yields an empty slice.
func Page(queried []users.PublicUser, page, size int) []users.PublicUser {
	if page < 1 || size < 1 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(queried) {
		return nil
	}

	end := start + size
	if end > len(queried) {
		end = len(queried)
	}
	return queried[start:end]
}

// TotalPages reports how many pages a view of n records occupies. An empty
// view still has one (empty) page, so the current page always has a valid
// value to be clamped to.
func TotalPages(n, size int) int {
	if size < 1 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}
