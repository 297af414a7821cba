package kdtree

// FilterFn reports whether an element should be kept by Filter,
// mirroring the teacher's avltree.FilterFn.
type FilterFn[K, V any] func(key K, value V) bool

// walkOrder selects Walk/Filter's output order, mirroring the
// teacher's avltree.WalkOrderAsc/WalkOrderDesc options.
type walkOrder int

const (
	walkAsc walkOrder = iota
	walkDesc
)

// WalkOption configures Walk and Filter.
type WalkOption func(*walkOrder)

// WalkOrderAsc requests ascending (plain in-order) output, the
// default.
func WalkOrderAsc() WalkOption { return func(o *walkOrder) { *o = walkAsc } }

// WalkOrderDesc requests descending (reverse in-order) output.
func WalkOrderDesc() WalkOption { return func(o *walkOrder) { *o = walkDesc } }

// Walk returns every element between begin and end, as a convenience
// over driving an Iterator by hand (grounded on the teacher's
// avltree.Tree.Points).
func Walk[K, V any, R Rank](begin, end Iterator[K, V, R], opts ...WalkOption) []Element[K, V] {
	return Filter(begin, end, func(K, V) bool { return true }, opts...)
}

// Filter returns every element between begin and end satisfying fn
// (grounded on the teacher's avltree.Tree.Filter).
func Filter[K, V any, R Rank](begin, end Iterator[K, V, R], fn FilterFn[K, V], opts ...WalkOption) []Element[K, V] {
	order := walkAsc
	for _, opt := range opts {
		opt(&order)
	}
	var out []Element[K, V]
	for it := begin; it.Valid() && it.pos != end.pos; it.Next() {
		if fn(it.pos.elem.Key, it.pos.elem.Value) {
			out = append(out, it.pos.elem)
		}
	}
	if order == walkDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// WalkRange drains a RangeIterator into a slice, for callers that want
// the whole match set rather than incremental iteration.
func WalkRange[K, V any, R Rank](it RangeIterator[K, V, R]) []Element[K, V] {
	var out []Element[K, V]
	for ; it.Valid(); it.Next() {
		out = append(out, it.pos.elem)
	}
	return out
}

// WalkEqual drains an EqualIterator into a slice.
func WalkEqual[K, V any, R Rank](it EqualIterator[K, V, R]) []Element[K, V] {
	var out []Element[K, V]
	for ; it.Valid(); it.Next() {
		out = append(out, it.pos.elem)
	}
	return out
}

// WalkNeighbor drains up to limit elements of a NeighborIterator into
// a slice, in ascending distance order. limit <= 0 drains the whole
// tree.
func WalkNeighbor[K, V any, R Rank](it NeighborIterator[K, V, R], limit int) []Element[K, V] {
	var out []Element[K, V]
	for i := 0; it.Valid() && (limit <= 0 || i < limit); i++ {
		out = append(out, it.cur.elem)
		it.Next()
	}
	return out
}
