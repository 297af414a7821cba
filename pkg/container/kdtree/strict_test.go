package kdtree

import (
	"testing"
)

func mustDynamic(t *testing.T, k int) Dynamic {
	t.Helper()
	d, err := NewDynamic(k)
	if err != nil {
		t.Fatalf("NewDynamic(%d): %v", k, err)
	}
	return d
}

func TestStrictTreeInsertFindErase(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, string](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}

	points := [][]float64{{2, 3}, {5, 4}, {9, 6}, {4, 7}, {8, 1}, {7, 2}}
	for i, p := range points {
		if _, err := tr.Insert(p, string(rune('a'+i))); err != nil {
			t.Fatalf("Insert(%v): %v", p, err)
		}
	}
	checkInvariants(t, &tr.base)

	if got := tr.Len(); got != len(points) {
		t.Fatalf("Len() = %d, want %d", got, len(points))
	}

	it := tr.Find([]float64{9, 6})
	if !it.Valid() {
		t.Fatal("Find did not locate inserted point")
	}
	if it.Value() != "c" {
		t.Fatalf("Find value = %q, want %q", it.Value(), "c")
	}

	tr.Erase(it)
	checkInvariants(t, &tr.base)
	if tr.Find([]float64{9, 6}).Valid() {
		t.Fatal("point still findable after Erase")
	}
	if got := tr.Len(); got != len(points)-1 {
		t.Fatalf("Len() after erase = %d, want %d", got, len(points)-1)
	}
}

func TestStrictTreeEraseKeyDuplicates(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, int](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	dup := []float64{1, 1}
	for i := 0; i < 3; i++ {
		if _, err := tr.Insert(dup, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := tr.Insert([]float64{2, 2}, 99); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	checkInvariants(t, &tr.base)

	n := tr.EraseKey(dup)
	if n != 3 {
		t.Fatalf("EraseKey removed %d, want 3", n)
	}
	checkInvariants(t, &tr.base)
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
}

func TestStrictTreeInOrderTraversal(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 1)
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	tr, err := NewStrict[[]float64, struct{}](rnk, less)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	vals := []float64{5, 3, 8, 1, 4, 7, 9, 2, 6}
	for _, v := range vals {
		if _, err := tr.Insert([]float64{v}, struct{}{}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	var got []float64
	for it := tr.Begin(); it.Valid(); it.Next() {
		got = append(got, it.Key()[0])
	}
	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("traversal length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("traversal[%d] = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestStrictTreeRebuild(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, struct{}](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	for i := 0; i < 50; i++ {
		p := []float64{float64(i), float64(50 - i)}
		if _, err := tr.Insert(p, struct{}{}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	before := tr.Len()
	if err := tr.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	checkInvariants(t, &tr.base)
	if tr.Len() != before {
		t.Fatalf("Len() after Rebuild = %d, want %d", tr.Len(), before)
	}
}

// TestStrictTreeRebuildKeepsDuplicatesOutOfLeftSpan reproduces a
// median split handing a tie on the split axis to the left subtree,
// which would violate the strict "left strictly less" invariant.
func TestStrictTreeRebuildKeepsDuplicatesOutOfLeftSpan(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 1)
	less := func(axis int, a, b []float64) bool { return a[0] < b[0] }
	tr, err := NewStrict[[]float64, int](rnk, less)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	for i := 0; i < 3; i++ {
		if _, err := tr.Insert([]float64{5}, i); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := tr.Rebuild(); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	checkInvariants(t, &tr.base)

	eq := WalkEqual(tr.Equal([]float64{5}))
	if len(eq) != 3 {
		t.Fatalf("equal match count after Rebuild = %d, want 3", len(eq))
	}
	matches := WalkRange(tr.Range([]float64{5}, []float64{5}))
	if len(matches) != 3 {
		t.Fatalf("range match count after Rebuild = %d, want 3", len(matches))
	}
}

func TestStrictTreeRangeAndEqual(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, struct{}](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			if _, err := tr.Insert([]float64{float64(x), float64(y)}, struct{}{}); err != nil {
				t.Fatalf("Insert: %v", err)
			}
		}
	}
	matches := WalkRange(tr.Range([]float64{1, 1}, []float64{3, 3}))
	if len(matches) != 9 {
		t.Fatalf("range match count = %d, want 9", len(matches))
	}

	if _, err := tr.Insert([]float64{2, 2}, struct{}{}); err != nil {
		t.Fatalf("Insert duplicate: %v", err)
	}
	eq := WalkEqual(tr.Equal([]float64{2, 2}))
	if len(eq) != 2 {
		t.Fatalf("equal match count = %d, want 2", len(eq))
	}
}

func TestStrictTreeMapping(t *testing.T) {
	t.Parallel()
	rnk := mustDynamic(t, 2)
	tr, err := NewStrict[[]float64, struct{}](rnk, less2D)
	if err != nil {
		t.Fatalf("NewStrict: %v", err)
	}
	pts := [][]float64{{3, 9}, {1, 5}, {2, 1}, {4, 7}}
	for _, p := range pts {
		if _, err := tr.Insert(p, struct{}{}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	var axis0 []float64
	for it := tr.Mapping(0); it.Valid(); it.Next() {
		axis0 = append(axis0, it.Key()[0])
	}
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if axis0[i] != want[i] {
			t.Fatalf("mapping axis-0 order[%d] = %v, want %v (full %v)", i, axis0[i], want[i], axis0)
		}
	}

	var axis1 []float64
	for it := tr.Mapping(1); it.Valid(); it.Next() {
		axis1 = append(axis1, it.Key()[1])
	}
	want1 := []float64{1, 5, 7, 9}
	for i := range want1 {
		if axis1[i] != want1[i] {
			t.Fatalf("mapping axis-1 order[%d] = %v, want %v (full %v)", i, axis1[i], want1[i], axis1)
		}
	}
}

func TestNewStrictRejectsInvalidRank(t *testing.T) {
	t.Parallel()
	if _, err := NewDynamic(0); err != ErrInvalidRank {
		t.Fatalf("NewDynamic(0) error = %v, want ErrInvalidRank", err)
	}
	if _, err := NewStrict[[]float64, struct{}](Dynamic(0), less2D); err != ErrInvalidRank {
		t.Fatalf("NewStrict(Dynamic(0)) error = %v, want ErrInvalidRank", err)
	}
}
