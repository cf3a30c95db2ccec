// Package scene holds the static constellation data: labeled nodes in
// node-space and the ordered list of edges that the reveal animation
// traverses.
//
// Node-space is the coordinate system the nodes are authored in. It is
// independent of any drawing surface; [viewport] maps it to screen-space.
//
// The edge list is an animation sequence, not a general graph. Edge i is
// revealed after edge i-1, so cycles and branching are irrelevant.
//
//	s := scene.Default()
//	if err := s.Validate(); err != nil {
//	    return err
//	}
//	fmt.Println(s.NodeCount(), s.EdgeCount()) // 8 7
//
// [viewport]: github.com/matzehuels/constellation/pkg/viewport
package scene
