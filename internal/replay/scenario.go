package replay

import (
	"github.com/spf13/viper"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

type Placement struct {
	X         int    `mapstructure:"x"`
	Y         int    `mapstructure:"y"`
	Direction string `mapstructure:"direction"`
	Ship      string `mapstructure:"ship"`
}

type Scenario struct {
	Name       string           `mapstructure:"name"`
	Placements []Placement      `mapstructure:"placements"`
	Shots      []mb.Coordinates `mapstructure:"shots"`
}

// LoadScenario decodes a scenario file. The format follows the
// extension: .yaml, .json and .toml all work.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, cerr.ErrReadScenario(path, err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return Scenario{}, cerr.ErrDecodeScenario(path, err)
	}

	return s, nil
}

// Requests converts every placement into a board request, failing
// on the first unknown ship or direction name.
func (s Scenario) Requests() ([]mb.PlaceShipRequest, error) {
	if len(s.Placements) > mb.MaxShips {
		return nil, cerr.ErrTooManyPlacements(len(s.Placements), mb.MaxShips)
	}

	reqs := make([]mb.PlaceShipRequest, 0, len(s.Placements))
	for i, p := range s.Placements {
		shipType, err := mb.ParseShipType(p.Ship)
		if err != nil {
			return nil, cerr.ErrInvalidPlacement(i, err)
		}
		direction, err := mb.ParseShipDirection(p.Direction)
		if err != nil {
			return nil, cerr.ErrInvalidPlacement(i, err)
		}

		reqs = append(reqs, mb.PlaceShipRequest{
			Coordinates: mb.NewCoordinates(p.X, p.Y),
			Direction:   direction,
			ShipType:    shipType,
		})
	}

	return reqs, nil
}
