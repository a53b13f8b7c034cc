package search

// Field reads one searchable value out of a record.
type Field[T any] func(T) string

// Filter keeps the items for which any field matches term under method,
// dropping later items whose key was already kept. An empty term keeps every
// item; a non-empty term with no fields keeps none.
func Filter[T any, K comparable](items []T, key func(T) K, term string, method Lookup, fields ...Field[T]) []T {
	if method == "" {
		method = DefaultLookup
	}
	seen := make(map[K]struct{}, len(items))
	res := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		if term != "" && !anyMatch(item, term, method, fields) {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, item)
	}
	return res
}

func anyMatch[T any](item T, term string, method Lookup, fields []Field[T]) bool {
	for _, f := range fields {
		if method.Match(f(item), term) {
			return true
		}
	}
	return false
}
