package battleship

import (
	"slices"
	"strings"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type ShipType uint8

const (
	ShipTypeDestroyer ShipType = iota
	ShipTypeSubmarine
	ShipTypeCruiser
	ShipTypeBattleship
	ShipTypeCarrier
)

type shipSpec struct {
	name   string
	length int
}

// Catalog of every ship type, indexed by ShipType.
var shipCatalog = [...]shipSpec{
	ShipTypeDestroyer:  {name: "Destroyer", length: 2},
	ShipTypeSubmarine:  {name: "Submarine", length: 3},
	ShipTypeCruiser:    {name: "Cruiser", length: 3},
	ShipTypeBattleship: {name: "Battleship", length: 4},
	ShipTypeCarrier:    {name: "Carrier", length: 5},
}

func (t ShipType) IsValid() bool {
	return int(t) < len(shipCatalog)
}

func (t ShipType) String() string {
	if !t.IsValid() {
		return "ShipType(?)"
	}
	return shipCatalog[t].name
}

func (t ShipType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Number of grid cells a ship of this type occupies.
func (t ShipType) Length() int {
	if !t.IsValid() {
		return 0
	}
	return shipCatalog[t].length
}

func ParseShipType(name string) (ShipType, error) {
	for i, spec := range shipCatalog {
		if strings.EqualFold(spec.name, strings.TrimSpace(name)) {
			return ShipType(i), nil
		}
	}
	return 0, cerr.ErrUnknownShipType(name)
}

type Ship struct {
	shipType  ShipType
	name      string
	positions []Coordinates
	hitMarks  []bool
	hits      int
}

// NewShip builds an unplaced ship; the board attaches its
// positions once every cell has been validated.
func NewShip(shipType ShipType) *Ship {
	return &Ship{
		shipType: shipType,
		name:     shipType.String(),
	}
}

func (sh *Ship) Type() ShipType {
	return sh.shipType
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Length() int {
	return sh.shipType.Length()
}

func (sh *Ship) Positions() []Coordinates {
	return slices.Clone(sh.positions)
}

func (sh *Ship) Hits() int {
	return sh.hits
}

func (sh *Ship) IsSunk() bool {
	return len(sh.positions) > 0 && sh.hits == len(sh.positions)
}

func (sh *Ship) Occupies(c Coordinates) bool {
	return slices.Contains(sh.positions, c)
}

// Returns the coordinates of this ship that have been hit so far.
func (sh *Ship) HitCoordinates() []Coordinates {
	hit := make([]Coordinates, 0, sh.hits)
	for i, marked := range sh.hitMarks {
		if marked {
			hit = append(hit, sh.positions[i])
		}
	}
	return hit
}

// FireAt resolves a shot against this ship alone. A cell that is
// already hit still reports a hit but is not counted twice.
func (sh *Ship) FireAt(c Coordinates) ShotStatus {
	idx := slices.Index(sh.positions, c)
	if idx == -1 {
		return ShotStatusMiss
	}

	if !sh.hitMarks[idx] {
		sh.hitMarks[idx] = true
		sh.hits++
	}

	if sh.IsSunk() {
		return ShotStatusHitAndSunk
	}
	return ShotStatusHit
}

func (sh *Ship) attach(positions []Coordinates) {
	sh.positions = positions
	sh.hitMarks = make([]bool, len(positions))
}
