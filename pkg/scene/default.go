package scene

// Highlight is the accent color used for the first node and revealed parts
// of the constellation.
const Highlight = "#3B6CFF"

var defaultNodes = []Node{
	{Label: "LILLY", X: 520, Y: 120, Color: Highlight},
	{Label: "IS A...", X: 300, Y: 220},
	{Label: "PRODUCT DESIGNER", X: 520, Y: 300},
	{Label: "ARTIST", X: 680, Y: 260},
	{Label: "UI/UX ENGINEER", X: 680, Y: 420},
	{Label: "CAKE BAKER", X: 320, Y: 440},
	{Label: "STATIONARY ADDICT", X: 450, Y: 520},
	{Label: "SMISKI HOARDER", X: 560, Y: 600},
}

var defaultEdges = []Edge{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 4},
	{4, 5},
	{5, 6},
	{6, 7},
}

// Default returns the built-in constellation: eight nodes joined by a
// seven-edge chain that is revealed from the first node to the last.
func Default() *Scene {
	return New(defaultNodes, defaultEdges)
}
