package reveal

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/constellation/pkg/scene"
)

func chain(n int) []scene.Edge {
	edges := make([]scene.Edge, n)
	for i := range edges {
		edges[i] = scene.Edge{From: i, To: i + 1}
	}
	return edges
}

func TestFullRevealScenario(t *testing.T) {
	a := New(scene.Default().Edges())

	for i := 0; i < 333; i++ {
		a.Step(0)
	}
	if got := a.State(); got != Revealing {
		t.Fatalf("after 333 frames State() = %v, want revealing", got)
	}
	if got := a.CompletedCount(); got != 6 {
		t.Errorf("after 333 frames CompletedCount() = %d, want 6", got)
	}

	a.Step(0)
	if got := a.State(); got != Complete {
		t.Fatalf("after 334 frames State() = %v, want complete", got)
	}
	if a.Progress() != 1 {
		t.Errorf("Progress() = %v, want exactly 1", a.Progress())
	}
	if got := a.CompletedCount(); got != 7 {
		t.Errorf("CompletedCount() = %d, want 7", got)
	}
	for i := 0; i < 7; i++ {
		if st := a.Edge(i); st.Phase != Done {
			t.Errorf("Edge(%d) = %v, want done", i, st.Phase)
		}
	}

	a.Step(3)
	if a.Progress() != 1 {
		t.Errorf("Progress() after extra frame = %v, want 1", a.Progress())
	}
}

func TestProgressMonotonic(t *testing.T) {
	a := New(chain(5), WithIncrement(0.01))
	hover := []int{NoNode, 2, 2, NoNode, 0, NoNode, NoNode, 4}

	prev := a.Progress()
	for frame := 0; frame < 400; frame++ {
		a.Step(hover[frame%len(hover)])
		p := a.Progress()
		if p < prev {
			t.Fatalf("frame %d: progress decreased %v -> %v", frame, prev, p)
		}
		if p > 1 {
			t.Fatalf("frame %d: progress %v exceeds 1", frame, p)
		}
		prev = p
	}
	if a.State() != Complete {
		t.Errorf("State() = %v, want complete", a.State())
	}
}

func TestProgressStopsWhenPointerLeaves(t *testing.T) {
	a := New(chain(7))
	for i := 0; i < 100; i++ {
		a.Step(1)
	}
	held := a.Progress()
	if held <= 0 || held >= 1 {
		t.Fatalf("Progress() = %v, want in (0,1)", held)
	}

	for i := 0; i < 50; i++ {
		if a.Step(NoNode) != Revealing {
			t.Fatalf("State() left revealing without hover")
		}
		if a.Progress() != held {
			t.Fatalf("Progress() = %v after leaving, want %v", a.Progress(), held)
		}
	}
	if a.Hovered() != NoNode {
		t.Errorf("Hovered() = %d, want NoNode", a.Hovered())
	}
}

func TestIdle(t *testing.T) {
	a := New(chain(7))
	if a.State() != Idle {
		t.Errorf("State() = %v, want idle", a.State())
	}
	if a.CompletedCount() != 0 {
		t.Errorf("CompletedCount() = %d, want 0", a.CompletedCount())
	}
	if a.Hovered() != NoNode {
		t.Errorf("Hovered() = %d, want NoNode", a.Hovered())
	}
	a.Step(NoNode)
	if a.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", a.Progress())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		hovered int
		dt      time.Duration
		want    float64
	}{
		{"one second", 0, time.Second, 0.18},
		{"half second", 4, 500 * time.Millisecond, 0.09},
		{"not hovered", NoNode, time.Second, 0},
		{"negative dt", 0, -time.Second, 0},
		{"clamped", 0, time.Minute, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(chain(7))
			a.Advance(tt.hovered, tt.dt)
			if math.Abs(a.Progress()-tt.want) > 1e-9 {
				t.Errorf("Progress() = %v, want %v", a.Progress(), tt.want)
			}
		})
	}
}

func TestWithRate(t *testing.T) {
	a := New(chain(2), WithRate(0.5))
	a.Advance(0, time.Second)
	if a.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", a.Progress())
	}
	if a.CompletedCount() != 1 {
		t.Errorf("CompletedCount() = %d, want 1", a.CompletedCount())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Idle, "idle"},
		{Revealing, "revealing"},
		{Complete, "complete"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSeek(t *testing.T) {
	a := New(chain(4))

	if got := a.Seek(0.5); got != Revealing {
		t.Errorf("Seek(0.5) = %v, want revealing", got)
	}
	if a.Seek(0.25); a.Progress() != 0.5 {
		t.Errorf("Seek backwards moved progress to %v", a.Progress())
	}
	if got := a.Seek(3); got != Complete || a.Progress() != 1 {
		t.Errorf("Seek(3) = %v progress %v, want complete at 1", got, a.Progress())
	}
}

func TestConfigureKeepsProgress(t *testing.T) {
	a := New(chain(4), WithIncrement(0.1))
	a.Step(0)
	a.Configure(WithIncrement(0.2))
	if math.Abs(a.Progress()-0.1) > 1e-12 {
		t.Fatalf("Configure changed progress to %v", a.Progress())
	}
	a.Step(0)
	if math.Abs(a.Progress()-0.3) > 1e-12 {
		t.Errorf("Progress() = %v, want 0.3", a.Progress())
	}
}
