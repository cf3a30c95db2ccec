package reveal

import (
	"math"
	"testing"
)

func TestEdgeStates(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		want     []EdgeState
	}{
		{
			name:     "idle",
			progress: 0,
			want: []EdgeState{
				{Phase: Drawing, Fraction: 0},
				{Phase: Hidden}, {Phase: Hidden}, {Phase: Hidden},
			},
		},
		{
			name:     "midway",
			progress: 0.625,
			want: []EdgeState{
				{Phase: Done, Fraction: 1},
				{Phase: Done, Fraction: 1},
				{Phase: Drawing, Fraction: 0.5},
				{Phase: Hidden},
			},
		},
		{
			name:     "complete",
			progress: 1,
			want: []EdgeState{
				{Phase: Done, Fraction: 1},
				{Phase: Done, Fraction: 1},
				{Phase: Done, Fraction: 1},
				{Phase: Done, Fraction: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(chain(4))
			a.progress = tt.progress
			for i, want := range tt.want {
				got := a.Edge(i)
				if got.Phase != want.Phase || math.Abs(got.Fraction-want.Fraction) > 1e-9 {
					t.Errorf("Edge(%d) = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestCompletedCountBounds(t *testing.T) {
	a := New(chain(7))
	if got := a.CompletedCount(); got != 0 {
		t.Errorf("CompletedCount() at 0 = %d, want 0", got)
	}
	a.progress = 1
	if got := a.CompletedCount(); got != 7 {
		t.Errorf("CompletedCount() at 1 = %d, want 7", got)
	}
}

func TestNodeHit(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		hit      []int
	}{
		{"idle", 0, nil},
		{"just started", 0.001, []int{0}},
		{"three edges done", 0.5, []int{0, 1, 2, 3}},
		{"complete", 1, []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(chain(7))
			a.progress = tt.progress

			want := make(map[int]bool)
			for _, i := range tt.hit {
				want[i] = true
			}
			for i := 0; i < 8; i++ {
				if got := a.NodeHit(i); got != want[i] {
					t.Errorf("NodeHit(%d) = %v, want %v", i, got, want[i])
				}
			}
		})
	}
}

func TestNodeHitNoEdges(t *testing.T) {
	a := New(nil)
	a.progress = 0.5
	if a.NodeHit(0) {
		t.Error("NodeHit(0) = true with no edges")
	}
}

func TestPhaseString(t *testing.T) {
	for p, want := range map[Phase]string{Hidden: "hidden", Drawing: "drawing", Done: "done", Phase(7): "unknown"} {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}
