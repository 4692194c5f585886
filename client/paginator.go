package client

// Ellipsis marks a gap in a page window.
const Ellipsis = -1

// PageWindow computes the page numbers a paginator control should render:
// the first and last page always, up to three numbers around the current
// page, and Ellipsis where pages are skipped.
//
//	PageWindow(5, 9) -> [1, -1, 4, 5, 6, -1, 9]
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}

	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	// Few enough pages to list them all.
	if total < 4 {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	// Current page near the start: first three, gap, last.
	if current < 3 {
		return []int{1, 2, 3, Ellipsis, total}
	}

	// Current page near the end: first, gap, last three.
	if current > total-3 {
		return []int{1, Ellipsis, total - 2, total - 1, total}
	}

	// Somewhere in the middle: first, gap, the window, gap, last.
	return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
}
