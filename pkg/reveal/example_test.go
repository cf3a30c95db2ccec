package reveal_test

import (
	"fmt"

	"github.com/matzehuels/constellation/pkg/reveal"
	"github.com/matzehuels/constellation/pkg/scene"
)

func ExampleAnimator() {
	a := reveal.New(scene.Default().Edges())

	// 150 hovered frames at the default increment.
	for range 150 {
		a.Step(0)
	}
	fmt.Println(a.State(), a.CompletedCount())
	fmt.Println(a.Edge(2).Phase, a.Edge(3).Phase, a.Edge(4).Phase)

	// The pointer leaves: nothing moves.
	a.Step(reveal.NoNode)
	fmt.Println(a.CompletedCount())
	// Output:
	// revealing 3
	// done drawing hidden
	// 3
}
