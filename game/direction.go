package game

// Direction is a unit step on the grid.
type Direction struct {
	DRow int
	DCol int
}

// Directions lists the 8 neighbours in row-major order.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
