package battleship

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipCatalog(t *testing.T) {
	tests := []Test[ShipType, shipSpec]{
		{name: "destroyer", req: ShipTypeDestroyer, expected: shipSpec{"Destroyer", 2}},
		{name: "submarine", req: ShipTypeSubmarine, expected: shipSpec{"Submarine", 3}},
		{name: "cruiser", req: ShipTypeCruiser, expected: shipSpec{"Cruiser", 3}},
		{name: "battleship", req: ShipTypeBattleship, expected: shipSpec{"Battleship", 4}},
		{name: "carrier", req: ShipTypeCarrier, expected: shipSpec{"Carrier", 5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := NewShip(test.req)
			assert.Equal(t, test.expected.name, ship.Name())
			assert.Equal(t, test.expected.length, ship.Length())
			assert.False(t, ship.IsSunk())
		})
	}

	assert.False(t, ShipType(200).IsValid())
	assert.Equal(t, 0, ShipType(200).Length())
}

func TestParseShipType(t *testing.T) {
	for _, name := range []string{"carrier", "CARRIER", " Carrier "} {
		st, err := ParseShipType(name)
		require.NoError(t, err)
		assert.Equal(t, ShipTypeCarrier, st)
	}

	_, err := ParseShipType("rowboat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rowboat")
}

func TestShipFireAt(t *testing.T) {
	ship := NewShip(ShipTypeDestroyer)
	ship.attach([]Coordinates{{1, 1}, {1, 2}})

	assert.Equal(t, ShotStatusMiss, ship.FireAt(NewCoordinates(2, 2)))
	assert.Equal(t, 0, ship.Hits())

	assert.Equal(t, ShotStatusHit, ship.FireAt(NewCoordinates(1, 2)))
	assert.Equal(t, []Coordinates{{1, 2}}, ship.HitCoordinates())

	// a repeated hit is not counted twice
	assert.Equal(t, ShotStatusHit, ship.FireAt(NewCoordinates(1, 2)))
	assert.Equal(t, 1, ship.Hits())
	assert.False(t, ship.IsSunk())

	assert.Equal(t, ShotStatusHitAndSunk, ship.FireAt(NewCoordinates(1, 1)))
	assert.True(t, ship.IsSunk())
	assert.Equal(t, []Coordinates{{1, 1}, {1, 2}}, ship.HitCoordinates())

	// sunk stays sunk
	assert.Equal(t, ShotStatusHitAndSunk, ship.FireAt(NewCoordinates(1, 1)))
	assert.True(t, ship.IsSunk())
}

func TestShipPositionsIsCopy(t *testing.T) {
	ship := NewShip(ShipTypeDestroyer)
	ship.attach([]Coordinates{{1, 1}, {1, 2}})

	positions := ship.Positions()
	positions[0] = NewCoordinates(9, 9)

	assert.True(t, ship.Occupies(NewCoordinates(1, 1)))
	assert.False(t, ship.Occupies(NewCoordinates(9, 9)))
}
