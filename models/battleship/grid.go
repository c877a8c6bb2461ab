package battleship

// Board dimensions. Coordinates are 1-based on both axes.
const (
	GridSize        int = 10
	ValidLowerBound int = 1
	ValidUpperBound int = GridSize
)

type Coordinates struct {
	X int `json:"x" mapstructure:"x"`
	Y int `json:"y" mapstructure:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

func (c Coordinates) IsOnGrid() bool {
	return c.X >= ValidLowerBound && c.X <= ValidUpperBound &&
		c.Y >= ValidLowerBound && c.Y <= ValidUpperBound
}

// Returns the neighbouring coordinates one step away in the given direction.
func (c Coordinates) Step(direction ShipDirection) Coordinates {
	dx, dy := direction.delta()
	return Coordinates{X: c.X + dx, Y: c.Y + dy}
}
