package state

func appendItem[T any](list []T, item T) []T {
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// replaceByID swaps the element with item's id. When nothing matches the
// original slice is returned.
func replaceByID[T any](list []T, item T, id func(T) int64) []T {
	want := id(item)
	for i := range list {
		if id(list[i]) == want {
			out := make([]T, len(list))
			copy(out, list)
			out[i] = item
			return out
		}
	}
	return list
}

func removeByID[T any](list []T, target int64, id func(T) int64) []T {
	idx := -1
	for i := range list {
		if id(list[i]) == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	return append(out, list[idx+1:]...)
}
