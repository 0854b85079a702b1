package storage

import (
	"testing"

	"github.com/apopiak/hyrise/pkg/types"
)

func buildDictionaryColumn(t *testing.T) *DictionaryColumn[string] {
	t.Helper()

	values := []string{"berlin", "potsdam", "berlin", ""}
	nulls := []bool{false, false, false, true}
	dict := NewDictionary(values, nulls)

	av := NewFittedAttributeVector(dict.Size()+1, len(values))
	for i, v := range values {
		if nulls[i] {
			av.Set(i, av.NullValueID())
			continue
		}
		av.Set(i, dict.IndexOf(v))
	}
	return NewDictionaryColumn(dict, av)
}

func TestDictionaryColumnValue(t *testing.T) {
	c := buildDictionaryColumn(t)

	if c.Size() != 4 {
		t.Fatalf("size = %d, want 4", c.Size())
	}
	if v, ok := c.Value(0); !ok || v != "berlin" {
		t.Errorf("Value(0) = %q, %v", v, ok)
	}
	if v, ok := c.Value(1); !ok || v != "potsdam" {
		t.Errorf("Value(1) = %q, %v", v, ok)
	}
	if _, ok := c.Value(3); ok {
		t.Error("Value(3) should report null")
	}
	if !c.IsNullAt(3) {
		t.Error("IsNullAt(3) = false")
	}
}

func TestDictionaryColumnLookups(t *testing.T) {
	c := buildDictionaryColumn(t)

	if c.UniqueValuesCount() != 2 {
		t.Fatalf("unique values = %d, want 2", c.UniqueValuesCount())
	}
	if got := c.ValueByValueID(1); got != "potsdam" {
		t.Errorf("ValueByValueID(1) = %q", got)
	}
	if got := c.AttributeVectorValue(2); got != 0 {
		t.Errorf("AttributeVectorValue(2) = %d, want 0", got)
	}
	if got := c.LowerBound("c"); got != 1 {
		t.Errorf("LowerBound(c) = %d, want 1", got)
	}
	if got := c.UpperBound("potsdam"); got != types.InvalidValueID {
		t.Errorf("UpperBound(potsdam) = %d, want InvalidValueID", got)
	}
	if c.DataType() != types.DataTypeString {
		t.Errorf("data type = %s", c.DataType())
	}
	if c.MemoryUsage() <= 0 {
		t.Error("memory usage should be positive")
	}
}
