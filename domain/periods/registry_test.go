package periods

import (
	"testing"

	"freyr/domain/auction"
)

func TestOpenWindow(t *testing.T) {
	r := New(5, 3)

	open := r.Open()
	want := []auction.Period{5, 6, 7}
	if len(open) != len(want) {
		t.Fatalf("expected %d open periods, got %d", len(want), len(open))
	}
	for i := range want {
		if open[i] != want[i] {
			t.Errorf("open[%d] = %d, want %d", i, open[i], want[i])
		}
	}
}

func TestIsOpenBounds(t *testing.T) {
	r := New(5, 3)

	if r.IsOpen(4) {
		t.Error("period before the window should be closed")
	}
	if !r.IsOpen(5) || !r.IsOpen(7) {
		t.Error("window edges should be open")
	}
	if r.IsOpen(8) {
		t.Error("period after the window should be closed")
	}
}

func TestAdvanceSlidesWindow(t *testing.T) {
	r := New(1, 2)

	r.Advance()
	if r.IsOpen(1) {
		t.Error("advanced past period 1, it should be closed")
	}
	if !r.IsOpen(2) || !r.IsOpen(3) {
		t.Error("window should now cover periods 2 and 3")
	}
}
