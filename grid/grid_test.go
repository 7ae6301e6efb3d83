package grid

import "testing"

func TestGetSetRoundTrip(t *testing.T) {
	g := New(2, 4)
	if g.Get([]int{1, 2}) {
		t.Fatalf("fresh grid should read false everywhere")
	}
	g.Set([]int{1, 2})
	if !g.Get([]int{1, 2}) {
		t.Errorf("Get after Set should be true")
	}
	if g.Get([]int{2, 1}) {
		t.Errorf("Set of [1,2] should not set [2,1]")
	}
}

func TestMonotoneNoClear(t *testing.T) {
	// grid exposes no Clear; this test documents that Set is the only
	// mutator and is idempotent.
	g := New(1, 3)
	g.Set([]int{0})
	g.Set([]int{0})
	if !g.Get([]int{0}) {
		t.Errorf("double Set should still read true")
	}
}

func TestLinearizeCoversFullRange(t *testing.T) {
	g := New(2, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g.Set([]int{i, j})
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !g.Get([]int{i, j}) {
				t.Errorf("cell [%d,%d] should be set", i, j)
			}
		}
	}
}

func TestDimensionAndLength(t *testing.T) {
	g := New(3, 5)
	if g.Dimension() != 3 {
		t.Errorf("Dimension() = %d, want 3", g.Dimension())
	}
	if g.Length() != 5 {
		t.Errorf("Length() = %d, want 5", g.Length())
	}
}

func TestPanicsOnDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on tuple dimension mismatch")
		}
	}()
	g := New(2, 3)
	g.Get([]int{1})
}
