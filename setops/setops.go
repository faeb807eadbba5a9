// Package setops provides set-style operations over slices.
//
// Inputs are treated as sets: duplicate elements collapse. Output order is
// deterministic first-seen order — results follow the first operand's order,
// and Union appends the second operand's unseen elements in their order.
package setops

// Intersect returns the distinct elements present in both a and b, in a's
// first-seen order.
func Intersect[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	out := []T{}
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Union returns the distinct elements of a followed by the distinct elements
// of b not already present in a.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	out := []T{}
	for _, v := range a {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range b {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Difference returns the distinct elements of a not present in b, in a's
// first-seen order.
func Difference[T comparable](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}
	seen := make(map[T]struct{}, len(a))
	out := []T{}
	for _, v := range a {
		if _, ok := inB[v]; ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
