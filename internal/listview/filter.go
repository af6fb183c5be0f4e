package listview

import "strings"

// Chain applies filters left to right, skipping nil ones.
func Chain[T any](filters ...func([]T) []T) func([]T) []T {
	return func(items []T) []T {
		for _, f := range filters {
			if f != nil {
				items = f(items)
			}
		}
		return items
	}
}

func Where[T any](keep func(T) bool) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, 0, len(items))
		for _, item := range items {
			if keep(item) {
				out = append(out, item)
			}
		}
		return out
	}
}

// Search keeps items whose text contains query, case-insensitively.
// An empty query keeps everything.
func Search[T any](query string, text func(T) string) func([]T) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return Where(func(item T) bool {
		return strings.Contains(strings.ToLower(text(item)), q)
	})
}
