package replay

import (
	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

type PlacementReport struct {
	Request mb.PlaceShipRequest `json:"request"`
	Result  mb.ShipPlacement    `json:"result"`
}

type ShotReport struct {
	Coordinates mb.Coordinates      `json:"coordinates"`
	Response    mb.FireShotResponse `json:"response"`
}

type Report struct {
	Scenario   string            `json:"scenario"`
	BoardUuid  string            `json:"board_uuid"`
	Placements []PlacementReport `json:"placements"`
	Shots      []ShotReport      `json:"shots"`
	ShotsFired int               `json:"shots_fired"`
	Victory    bool              `json:"victory"`
}

type Runner struct {
	logger zerolog.Logger
}

func NewRunner(logger zerolog.Logger) Runner {
	return Runner{logger: logger}
}

// Run lays out the scenario fleet on board and fires its shots in
// order. Firing stops at victory; later shots are left unreported.
// The scenario is validated before the board is touched.
func (r Runner) Run(board *mb.GuardedBoard, s Scenario) (Report, error) {
	reqs, err := s.Requests()
	if err != nil {
		return Report{}, err
	}

	var placed int
	board.WithBoard(func(b *mb.Board) { placed = b.ShipCount() })
	if placed+len(reqs) > mb.MaxShips {
		return Report{}, cerr.ErrTooManyPlacements(placed+len(reqs), mb.MaxShips)
	}

	logger := r.logger.With().Str("scenario", s.Name).Str("board", board.Uuid()).Logger()
	report := Report{
		Scenario:   s.Name,
		BoardUuid:  board.Uuid(),
		Placements: make([]PlacementReport, 0, len(reqs)),
		Shots:      make([]ShotReport, 0, len(s.Shots)),
	}

	for _, req := range reqs {
		result := board.PlaceShip(req)
		report.Placements = append(report.Placements, PlacementReport{Request: req, Result: result})

		logger.Info().
			Stringer("ship", req.ShipType).
			Int("x", req.Coordinates.X).
			Int("y", req.Coordinates.Y).
			Stringer("direction", req.Direction).
			Stringer("result", result).
			Msg("placement")
	}

	for _, c := range s.Shots {
		resp := board.FireShot(c)
		report.Shots = append(report.Shots, ShotReport{Coordinates: c, Response: resp})
		report.ShotsFired++

		event := logger.Info().Int("x", c.X).Int("y", c.Y).Stringer("status", resp.ShotStatus)
		if resp.ShipImpacted != "" {
			event = event.Str("ship", resp.ShipImpacted)
		}
		event.Msg("shot")

		if resp.ShotStatus == mb.ShotStatusVictory {
			report.Victory = true
			logger.Info().Int("shots", report.ShotsFired).Msg("fleet destroyed")
			break
		}
	}

	return report, nil
}
