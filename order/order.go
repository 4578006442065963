package order

// Maximal returns the elements of items that are not strictly below any
// other item under leq: the maximal antichain. Mutually-leq duplicates keep
// only their first occurrence; relative input order is preserved otherwise.
//
// leq must be a partial-order predicate; Maximal never calls it with
// identical slice positions.
//
// Complexity: O(k²) predicate calls for k items.
func Maximal[T any](items []T, leq func(a, b T) bool) []T {
	out := make([]T, 0, len(items))

next:
	for i, cand := range items {
		// 1. Drop cand if an already-accepted item dominates or equals it.
		for _, kept := range out {
			if leq(cand, kept) {
				continue next
			}
		}
		// 2. Drop cand if any later item strictly dominates it. Earlier
		//    items were handled in step 1 (accepted) or are themselves
		//    dominated (and whatever dominates them dominates cand too).
		for j := i + 1; j < len(items); j++ {
			if leq(cand, items[j]) && !leq(items[j], cand) {
				continue next
			}
		}
		out = append(out, cand)
	}

	return out
}

// Minimal returns the minimal antichain of items under leq; it is Maximal
// with the order reversed.
func Minimal[T any](items []T, leq func(a, b T) bool) []T {
	return Maximal(items, func(a, b T) bool { return leq(b, a) })
}
