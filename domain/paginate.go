package domain

// PageMeta describes the position of one page within a filtered set.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices a filtered summary set into the 1-based page of the given
// size. A page beyond the end yields an empty slice, never an error, so
// stale client page state after a filter change degrades gracefully.
func Paginate(summaries []ArticleSummary, page, size int) ([]ArticleSummary, PageMeta) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	meta := PageMeta{
		Page:       page,
		PageSize:   size,
		TotalItems: len(summaries),
		TotalPages: (len(summaries) + size - 1) / size,
	}

	start := (page - 1) * size
	if start >= len(summaries) {
		return []ArticleSummary{}, meta
	}
	end := start + size
	if end > len(summaries) {
		end = len(summaries)
	}

	return summaries[start:end], meta
}
