package response

import "venue-booking/internal/usecase/queries"

type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// FromPage converts every item of an offset page.
func FromPage[V any, T any](p *queries.Page[V], convert func(V) T) *PageResponse[T] {
	items := make([]T, len(p.Items))
	for i, v := range p.Items {
		items[i] = convert(v)
	}
	return &PageResponse[T]{
		Items: items,
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
	}
}
