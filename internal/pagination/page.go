package pagination

// Page is the listing envelope.
type Page[T any] struct {
	Success      bool  `json:"success"`
	TotalRecords int64 `json:"total_records"`
	TotalPages   int   `json:"total_pages"`
	Page         int   `json:"page"`
	Next         bool  `json:"next"`
	Prev         bool  `json:"prev"`
	Data         []T   `json:"data"`
}

// CalculateOffset returns (page - 1) * limit.
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit). Zero records means zero pages.
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// NewPage builds the envelope for one page of items.
func NewPage[T any](total int64, p Params, items []T) *Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := CalculateTotalPages(total, p.Limit)
	return &Page[T]{
		Success:      true,
		TotalRecords: total,
		TotalPages:   totalPages,
		Page:         p.Page,
		Next:         p.Page < totalPages,
		Prev:         p.Page > 1,
		Data:         items,
	}
}

// Map converts a page's items while keeping its metadata.
func Map[T, U any](in *Page[T], fn func(T) U) *Page[U] {
	out := &Page[U]{
		Success:      in.Success,
		TotalRecords: in.TotalRecords,
		TotalPages:   in.TotalPages,
		Page:         in.Page,
		Next:         in.Next,
		Prev:         in.Prev,
		Data:         make([]U, 0, len(in.Data)),
	}
	for _, item := range in.Data {
		out.Data = append(out.Data, fn(item))
	}
	return out
}
