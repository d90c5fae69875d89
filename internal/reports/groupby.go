package reports

import (
	"sort"

	"orderdesk/internal/models"
)

// groupBy folds every (order, item) pair into buckets keyed by key. Buckets
// keep first-seen order so repeated runs over the same input are
// deterministic. seed builds a bucket from its first pair, fold merges each
// subsequent pair into it.
func groupBy[K comparable, R any](
	orders []models.Order,
	key func(models.Order, models.OrderItem) K,
	seed func(models.Order, models.OrderItem) R,
	fold func(R, models.Order, models.OrderItem) R,
) []R {
	index := make(map[K]int)
	out := make([]R, 0)
	for _, o := range orders {
		for _, it := range o.Items {
			k := key(o, it)
			if i, ok := index[k]; ok {
				out[i] = fold(out[i], o, it)
			} else {
				index[k] = len(out)
				out = append(out, seed(o, it))
			}
		}
	}
	return out
}

// sortRows stable-sorts rows by less, reversing the comparison for
// Descending. Stability means ties keep their pre-sort relative order.
func sortRows[R any](rows []R, less func(a, b R) bool, dir Direction) {
	cmp := less
	if dir == Descending {
		cmp = func(a, b R) bool { return less(b, a) }
	}
	sort.SliceStable(rows, func(i, j int) bool { return cmp(rows[i], rows[j]) })
}
