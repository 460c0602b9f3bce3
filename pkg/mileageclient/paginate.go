package mileageclient

// Paginate returns the 1-based page of items and the total page count. Pages
// past the end are empty; page and size below 1 are clamped to 1.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := (len(items) + size - 1) / size
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}, total
	}

	end := min(start+size, len(items))
	return items[start:end], total
}
