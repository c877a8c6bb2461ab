package error

import "fmt"

const (
	ConstErrPlacementFailed = "ship placement failed"
)

func ErrBoardNotExists(boardUuid string) error {
	return fmt.Errorf("board with this uuid does not exist, uuid: %s", boardUuid)
}

// Panic value for placing a ship on a full board.
func ErrFleetFull(capacity int) error {
	return fmt.Errorf("cannot add another ship, %d is the limit", capacity)
}

func ErrUnknownShipType(name string) error {
	return fmt.Errorf("unknown ship type:\t%s", name)
}

func ErrUnknownDirection(name string) error {
	return fmt.Errorf("unknown ship direction:\t%s", name)
}

func ErrTooManyPlacements(got, capacity int) error {
	return fmt.Errorf("scenario places %d ships, board holds at most %d", got, capacity)
}

func ErrInvalidPlacement(index int, err error) error {
	return fmt.Errorf("%s at placement %d: %w", ConstErrPlacementFailed, index, err)
}

func ErrReadScenario(path string, err error) error {
	return fmt.Errorf("error reading scenario file %s: %w", path, err)
}

func ErrDecodeScenario(path string, err error) error {
	return fmt.Errorf("error decoding scenario file %s: %w", path, err)
}

func ErrReadConfig(err error) error {
	return fmt.Errorf("error reading config file: %w", err)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidLogFormat(format string) error {
	return fmt.Errorf("log format must be console or json, got: %s", format)
}
