package dllist

import "testing"

func TestNode(t *testing.T) {
	n := NewNode(-1)
	if n.Value() != -1 {
		t.Errorf("unexpected initial value %d", n.Value())
	}
	if n.Next() != nil || n.Prev() != nil {
		t.Error("new node must have no relations")
	}

	n.SetValue(5)
	if n.Value() != 5 {
		t.Errorf("unexpected value %d after set", n.Value())
	}
}
