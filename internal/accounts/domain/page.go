package domain

// PageMeta describes where a page sits within the full result set.
type PageMeta struct {
	TotalItems   int
	ItemCount    int
	ItemsPerPage int
	TotalPages   int
	CurrentPage  int
	HasNext      bool
	HasPrevious  bool
}

type Page[T any] struct {
	Data []T
	Meta PageMeta
}

// NewPage computes pagination metadata from the requested page and limit,
// not from len(items), so an out-of-range page still reports flags relative
// to the total.
func NewPage[T any](items []T, total int, q ListQuery) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if q.Limit > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit
	}

	return Page[T]{
		Data: items,
		Meta: PageMeta{
			TotalItems:   total,
			ItemCount:    len(items),
			ItemsPerPage: q.Limit,
			TotalPages:   totalPages,
			CurrentPage:  q.Page,
			HasNext:      q.Page < totalPages,
			HasPrevious:  q.Page > 1,
		},
	}
}
