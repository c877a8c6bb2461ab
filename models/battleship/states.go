package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// Outcome recorded in the shot history for a coordinate.
// The zero value means nothing was fired there yet.
type ShotOutcome uint8

const (
	ShotOutcomeUnknown ShotOutcome = iota
	ShotOutcomeHit
	ShotOutcomeMiss
)

var shotOutcomeNames = [...]string{"Unknown", "Hit", "Miss"}

func (o ShotOutcome) String() string {
	if int(o) < len(shotOutcomeNames) {
		return shotOutcomeNames[o]
	}
	return "ShotOutcome(?)"
}

func (o ShotOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result of a single FireShot call.
type ShotStatus uint8

const (
	ShotStatusInvalid ShotStatus = iota
	ShotStatusDuplicate
	ShotStatusMiss
	ShotStatusHit
	ShotStatusHitAndSunk
	ShotStatusVictory
)

var shotStatusNames = [...]string{"Invalid", "Duplicate", "Miss", "Hit", "HitAndSunk", "Victory"}

func (s ShotStatus) String() string {
	if int(s) < len(shotStatusNames) {
		return shotStatusNames[s]
	}
	return "ShotStatus(?)"
}

func (s ShotStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// True for statuses that damaged a ship.
func (s ShotStatus) IsHit() bool {
	return s == ShotStatusHit || s == ShotStatusHitAndSunk || s == ShotStatusVictory
}

type ShipPlacement uint8

const (
	ShipPlacementOk ShipPlacement = iota
	ShipPlacementNotEnoughSpace
	ShipPlacementOverlap
)

var shipPlacementNames = [...]string{"Ok", "NotEnoughSpace", "Overlap"}

func (p ShipPlacement) String() string {
	if int(p) < len(shipPlacementNames) {
		return shipPlacementNames[p]
	}
	return "ShipPlacement(?)"
}

func (p ShipPlacement) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type ShipDirection uint8

const (
	ShipDirectionUp ShipDirection = iota
	ShipDirectionDown
	ShipDirectionLeft
	ShipDirectionRight
)

var shipDirectionNames = [...]string{"Up", "Down", "Left", "Right"}

func (d ShipDirection) String() string {
	if int(d) < len(shipDirectionNames) {
		return shipDirectionNames[d]
	}
	return "ShipDirection(?)"
}

func (d ShipDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Rows grow along x and columns along y: Up/Down move between
// rows, Left/Right move inside a row.
func (d ShipDirection) delta() (dx, dy int) {
	switch d {
	case ShipDirectionUp:
		return -1, 0
	case ShipDirectionDown:
		return 1, 0
	case ShipDirectionLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

func ParseShipDirection(name string) (ShipDirection, error) {
	for i, n := range shipDirectionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return ShipDirection(i), nil
		}
	}
	return 0, cerr.ErrUnknownDirection(name)
}
