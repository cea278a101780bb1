package resource

import (
	"testing"
)

func TestTableInsertValue(t *testing.T) {
	var tb Table

	i1 := tb.Insert(100)
	i2 := tb.Insert(200)

	if i1 == i2 {
		t.Error("Insert returned the same index for different resources")
	}

	if v := tb.Value(i1); v != 100 {
		t.Errorf("Value = %d, want 100", v)
	}
	if v := tb.Value(i2); v != 200 {
		t.Errorf("Value = %d, want 200", v)
	}
}

func TestTableDropReleases(t *testing.T) {
	var tb Table

	idx := tb.Insert(42)
	v, released := tb.Drop(idx)
	if !released {
		t.Fatal("Drop of sole reference did not release")
	}
	if v != 42 {
		t.Errorf("released value = %d, want 42", v)
	}
	if tb.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tb.Len())
	}
}

func TestTableCloneKeepsAlive(t *testing.T) {
	var tb Table

	idx := tb.Insert(42)
	tb.Clone(idx)

	// First drop: still referenced, nothing to finalize.
	v, released := tb.Drop(idx)
	if released {
		t.Fatal("Drop released while a reference remained")
	}
	if v != 0 {
		t.Errorf("still-alive drop returned value %d, want 0", v)
	}

	if got := tb.Value(idx); got != 42 {
		t.Errorf("Value = %d, want 42 after first drop", got)
	}

	// Final drop releases the original value.
	v, released = tb.Drop(idx)
	if !released {
		t.Fatal("final Drop did not release")
	}
	if v != 42 {
		t.Errorf("released value = %d, want 42", v)
	}
}

func TestTableDropCountMatchesClones(t *testing.T) {
	var tb Table

	const clones = 5
	idx := tb.Insert(7)
	for i := 0; i < clones; i++ {
		tb.Clone(idx)
	}

	for i := 0; i < clones; i++ {
		if _, released := tb.Drop(idx); released {
			t.Fatalf("Drop %d released early", i+1)
		}
	}
	if _, released := tb.Drop(idx); !released {
		t.Fatal("drop after last clone did not release")
	}
}

func TestTableSlotRecycled(t *testing.T) {
	var tb Table

	i1 := tb.Insert(1)
	if _, released := tb.Drop(i1); !released {
		t.Fatal("Drop did not release")
	}

	// Slot is recycled by an unrelated insert with no distinguishing tag.
	i2 := tb.Insert(2)
	if i2 != i1 {
		t.Errorf("Insert = %d, want recycled index %d", i2, i1)
	}
	if v := tb.Value(i2); v != 2 {
		t.Errorf("Value = %d, want 2", v)
	}
}

func TestTableValueUnresolvedPanics(t *testing.T) {
	var tb Table

	defer func() {
		if recover() == nil {
			t.Error("Value did not panic for unresolved index")
		}
	}()
	tb.Value(99)
}

func TestTableCloneUnresolvedPanics(t *testing.T) {
	var tb Table

	defer func() {
		if recover() == nil {
			t.Error("Clone did not panic for unresolved index")
		}
	}()
	tb.Clone(99)
}

func TestTableDropUnresolvedPanics(t *testing.T) {
	var tb Table

	idx := tb.Insert(1)
	if _, released := tb.Drop(idx); !released {
		t.Fatal("Drop did not release")
	}

	defer func() {
		if recover() == nil {
			t.Error("Drop did not panic for recycled index")
		}
	}()
	tb.Drop(idx)
}
