package battleship

import (
	"math/rand"
	"testing"
)

func TestRandomMoveSourceCoversGridOnce(t *testing.T) {
	rms := NewRandomMoveSource(rand.New(rand.NewSource(3)), GridSizeDefault)
	seen := make(map[Coordinates]bool, GridSizeDefault*GridSizeDefault)

	for i := 0; i < GridSizeDefault*GridSizeDefault; i++ {
		target, err := rms.NextTarget()
		if err != nil {
			t.Fatal(err)
		}
		if !target.IsWithin(GridSizeDefault) {
			t.Fatalf("target out of bounds: %v", target)
		}
		if seen[target] {
			t.Fatalf("target repeated: %v", target)
		}
		seen[target] = true
	}

	if rms.Remaining() != 0 {
		t.Fatalf("expected no remaining targets\tgot: %d", rms.Remaining())
	}
	if _, err := rms.NextTarget(); err == nil {
		t.Fatal("expected error once every cell was tried")
	}
}

func TestRandomMoveSourceIsDeterministic(t *testing.T) {
	a := NewRandomMoveSource(rand.New(rand.NewSource(42)), GridSizeDefault)
	b := NewRandomMoveSource(rand.New(rand.NewSource(42)), GridSizeDefault)

	for i := 0; i < 10; i++ {
		ta, _ := a.NextTarget()
		tb, _ := b.NextTarget()
		if ta != tb {
			t.Fatalf("same seed diverged at move %d: %v vs %v", i, ta, tb)
		}
	}
}
