package battleship

import (
	"maps"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// Maximum number of ships a single board holds.
const MaxShips int = 5

type PlaceShipRequest struct {
	Coordinates Coordinates   `json:"coordinates"`
	Direction   ShipDirection `json:"direction"`
	ShipType    ShipType      `json:"ship_type"`
}

type FireShotResponse struct {
	ShotStatus   ShotStatus `json:"shot_status"`
	ShipImpacted string     `json:"ship_impacted,omitempty"`
}

// Board holds one player's fleet and every shot fired at it.
// It is not safe for concurrent use; see GuardedBoard.
type Board struct {
	uuid        string
	ships       [MaxShips]*Ship
	shipCount   int
	shotHistory map[Coordinates]ShotOutcome
	logger      zerolog.Logger
}

type BoardOption func(*Board)

func WithLogger(logger zerolog.Logger) BoardOption {
	return func(b *Board) {
		b.logger = logger
	}
}

func WithUuid(boardUuid string) BoardOption {
	return func(b *Board) {
		b.uuid = boardUuid
	}
}

func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		shotHistory: make(map[Coordinates]ShotOutcome, GridSize*GridSize),
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.uuid == "" {
		b.uuid = uuid.NewString()[:6]
	}
	b.logger = b.logger.With().Str("board", b.uuid).Logger()

	return b
}

func (b *Board) Uuid() string {
	return b.uuid
}

// Returns the placed ships in placement order.
func (b *Board) Ships() []*Ship {
	placed := make([]*Ship, b.shipCount)
	copy(placed, b.ships[:b.shipCount])
	return placed
}

func (b *Board) ShipCount() int {
	return b.shipCount
}

func (b *Board) IsFleetFull() bool {
	return b.shipCount == MaxShips
}

func (b *Board) ShotCount() int {
	return len(b.shotHistory)
}

func (b *Board) ShotHistory() map[Coordinates]ShotOutcome {
	return maps.Clone(b.shotHistory)
}

// True once at least one ship is placed and every placed ship is sunk.
func (b *Board) IsDefeated() bool {
	if b.shipCount == 0 {
		return false
	}
	for _, ship := range b.ships[:b.shipCount] {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (b *Board) CheckCoordinate(c Coordinates) ShotOutcome {
	outcome, prs := b.shotHistory[c]
	if !prs {
		return ShotOutcomeUnknown
	}
	return outcome
}

func (b *Board) FireShot(c Coordinates) FireShotResponse {
	var resp FireShotResponse

	if !c.IsOnGrid() {
		resp.ShotStatus = ShotStatusInvalid
		b.logger.Debug().Int("x", c.X).Int("y", c.Y).Msg("shot off the grid")
		return resp
	}

	if _, prs := b.shotHistory[c]; prs {
		resp.ShotStatus = ShotStatusDuplicate
		b.logger.Debug().Int("x", c.X).Int("y", c.Y).Msg("duplicate shot")
		return resp
	}

	b.checkShipsForHit(c, &resp)
	if resp.ShotStatus == ShotStatusHitAndSunk && b.IsDefeated() {
		resp.ShotStatus = ShotStatusVictory
	}

	b.logger.Debug().
		Int("x", c.X).
		Int("y", c.Y).
		Stringer("status", resp.ShotStatus).
		Str("ship", resp.ShipImpacted).
		Msg("shot fired")

	return resp
}

// Only the first unsunk ship occupying c takes the hit. Exactly one
// history entry is written per call.
func (b *Board) checkShipsForHit(c Coordinates, resp *FireShotResponse) {
	resp.ShotStatus = ShotStatusMiss

	for _, ship := range b.ships[:b.shipCount] {
		if ship.IsSunk() {
			continue
		}

		status := ship.FireAt(c)
		if status == ShotStatusMiss {
			continue
		}

		resp.ShotStatus = status
		resp.ShipImpacted = ship.Name()
		break
	}

	if resp.ShotStatus == ShotStatusMiss {
		b.shotHistory[c] = ShotOutcomeMiss
		return
	}
	b.shotHistory[c] = ShotOutcomeHit
}

// PlaceShip panics once the board already holds MaxShips ships.
// Rejections leave the board untouched.
func (b *Board) PlaceShip(req PlaceShipRequest) ShipPlacement {
	if b.IsFleetFull() {
		panic(cerr.ErrFleetFull(MaxShips))
	}
	if !req.ShipType.IsValid() {
		panic(cerr.ErrUnknownShipType(req.ShipType.String()))
	}

	if !req.Coordinates.IsOnGrid() {
		b.logPlacement(req, ShipPlacementNotEnoughSpace)
		return ShipPlacementNotEnoughSpace
	}

	newShip := NewShip(req.ShipType)
	positions := make([]Coordinates, 0, newShip.Length())

	current := req.Coordinates
	for i := 0; i < newShip.Length(); i++ {
		if !current.IsOnGrid() {
			b.logPlacement(req, ShipPlacementNotEnoughSpace)
			return ShipPlacementNotEnoughSpace
		}
		if b.overlapsAnotherShip(current) {
			b.logPlacement(req, ShipPlacementOverlap)
			return ShipPlacementOverlap
		}

		positions = append(positions, current)
		current = current.Step(req.Direction)
	}

	newShip.attach(positions)
	b.addShipToBoard(newShip)
	b.logPlacement(req, ShipPlacementOk)

	return ShipPlacementOk
}

func (b *Board) addShipToBoard(ship *Ship) {
	b.ships[b.shipCount] = ship
	b.shipCount++
}

func (b *Board) overlapsAnotherShip(c Coordinates) bool {
	for _, ship := range b.ships[:b.shipCount] {
		if ship.Occupies(c) {
			return true
		}
	}
	return false
}

func (b *Board) logPlacement(req PlaceShipRequest, result ShipPlacement) {
	b.logger.Debug().
		Stringer("ship", req.ShipType).
		Stringer("direction", req.Direction).
		Int("x", req.Coordinates.X).
		Int("y", req.Coordinates.Y).
		Stringer("result", result).
		Msg("place ship")
}
