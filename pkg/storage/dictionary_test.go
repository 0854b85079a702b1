package storage

import (
	"testing"

	"github.com/apopiak/hyrise/pkg/testutil"
	"github.com/apopiak/hyrise/pkg/types"
)

func TestDictionarySortedAndUnique(t *testing.T) {
	dict := NewDictionary([]int32{7, 3, 7, 1, 3, 9}, nil)

	if dict.Size() != 4 {
		t.Fatalf("expected 4 distinct values, got %d", dict.Size())
	}

	values := dict.Values()
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			t.Errorf("dictionary not strictly increasing at %d: %v", i, values)
		}
	}

	if dict.Min() != 1 || dict.Max() != 9 {
		t.Errorf("expected min=1 max=9, got min=%d max=%d", dict.Min(), dict.Max())
	}
}

func TestDictionaryNullPartition(t *testing.T) {
	values := []string{"b", "", "a", "", "b"}
	nulls := []bool{false, true, false, true, false}

	dict := NewDictionary(values, nulls)

	if dict.Size() != 2 {
		t.Fatalf("expected 2 distinct values, got %d: %v", dict.Size(), dict.Values())
	}
	if dict.ValueByID(0) != "a" || dict.ValueByID(1) != "b" {
		t.Errorf("unexpected dictionary content: %v", dict.Values())
	}
}

func TestDictionaryAllNull(t *testing.T) {
	dict := NewDictionary([]float64{0, 0, 0}, []bool{true, true, true})

	if dict.Size() != 0 {
		t.Fatalf("expected empty dictionary, got %v", dict.Values())
	}
}

func TestDictionaryIndexOf(t *testing.T) {
	dict := NewDictionary([]int64{30, 10, 20}, nil)

	for id, want := range []int64{10, 20, 30} {
		if got := dict.IndexOf(want); got != types.ValueID(id) {
			t.Errorf("IndexOf(%d) = %d, want %d", want, got, id)
		}
	}

	testutil.RequirePanic(t, func() {
		dict.IndexOf(15)
	}, "value not in dictionary")
}

func TestDictionaryBounds(t *testing.T) {
	dict := NewDictionary([]int32{10, 20, 30}, nil)

	if got := dict.LowerBound(15); got != 1 {
		t.Errorf("LowerBound(15) = %d, want 1", got)
	}
	if got := dict.LowerBound(20); got != 1 {
		t.Errorf("LowerBound(20) = %d, want 1", got)
	}
	if got := dict.UpperBound(20); got != 2 {
		t.Errorf("UpperBound(20) = %d, want 2", got)
	}
	if got := dict.LowerBound(31); got != types.InvalidValueID {
		t.Errorf("LowerBound(31) = %d, want InvalidValueID", got)
	}
	if got := dict.UpperBound(30); got != types.InvalidValueID {
		t.Errorf("UpperBound(30) = %d, want InvalidValueID", got)
	}
}
