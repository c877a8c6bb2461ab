package battleship

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipDirection(t *testing.T) {
	tests := []Test[string, ShipDirection]{
		{name: "up", req: "up", expected: ShipDirectionUp},
		{name: "down", req: "Down", expected: ShipDirectionDown},
		{name: "left", req: "LEFT", expected: ShipDirectionLeft},
		{name: "right", req: " right", expected: ShipDirectionRight},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := ParseShipDirection(test.req)
			require.NoError(t, err)
			assert.Equal(t, test.expected, d)
		})
	}

	_, err := ParseShipDirection("diagonal")
	assert.Error(t, err)
}

func TestCoordinatesStep(t *testing.T) {
	c := NewCoordinates(5, 5)

	assert.Equal(t, NewCoordinates(4, 5), c.Step(ShipDirectionUp))
	assert.Equal(t, NewCoordinates(6, 5), c.Step(ShipDirectionDown))
	assert.Equal(t, NewCoordinates(5, 4), c.Step(ShipDirectionLeft))
	assert.Equal(t, NewCoordinates(5, 6), c.Step(ShipDirectionRight))
}

func TestStatusNames(t *testing.T) {
	assert.Equal(t, "HitAndSunk", ShotStatusHitAndSunk.String())
	assert.Equal(t, "Overlap", ShipPlacementOverlap.String())
	assert.Equal(t, "Unknown", ShotOutcomeUnknown.String())
	assert.Equal(t, "ShotStatus(?)", ShotStatus(99).String())

	assert.False(t, ShotStatusMiss.IsHit())
	assert.False(t, ShotStatusDuplicate.IsHit())
	assert.True(t, ShotStatusVictory.IsHit())
}

func TestFireShotResponseJSON(t *testing.T) {
	data, err := json.Marshal(FireShotResponse{ShotStatus: ShotStatusHit, ShipImpacted: "Cruiser"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shot_status":"Hit","ship_impacted":"Cruiser"}`, string(data))

	data, err = json.Marshal(FireShotResponse{ShotStatus: ShotStatusMiss})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shot_status":"Miss"}`, string(data))
}
