package battleship

import (
	"sync"

	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

type BoardManager interface {
	CreateBoard() *GuardedBoard
	FetchBoard(boardUuid string) (*GuardedBoard, error)
	TerminateBoard(boardUuid string)
	Len() int
}

// GuardedBoard serializes every call into the wrapped Board so
// several goroutines may share it.
type GuardedBoard struct {
	board *Board
	mu    sync.Mutex
}

func NewGuardedBoard(board *Board) *GuardedBoard {
	return &GuardedBoard{board: board}
}

func (gb *GuardedBoard) Uuid() string {
	return gb.board.Uuid()
}

func (gb *GuardedBoard) PlaceShip(req PlaceShipRequest) ShipPlacement {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	return gb.board.PlaceShip(req)
}

func (gb *GuardedBoard) FireShot(c Coordinates) FireShotResponse {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	return gb.board.FireShot(c)
}

func (gb *GuardedBoard) CheckCoordinate(c Coordinates) ShotOutcome {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	return gb.board.CheckCoordinate(c)
}

// WithBoard runs fn while holding the lock, for reads spanning
// more than one call.
func (gb *GuardedBoard) WithBoard(fn func(b *Board)) {
	gb.mu.Lock()
	defer gb.mu.Unlock()
	fn(gb.board)
}

type BattleshipBoardManager struct {
	boards map[string]*GuardedBoard
	logger zerolog.Logger
	mu     sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager(logger zerolog.Logger) *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*GuardedBoard, 10),
		logger: logger,
	}
}

func (bbm *BattleshipBoardManager) CreateBoard() *GuardedBoard {
	board := NewBoard(WithLogger(bbm.logger))
	guarded := NewGuardedBoard(board)

	bbm.mu.Lock()
	bbm.boards[board.Uuid()] = guarded
	bbm.mu.Unlock()

	bbm.logger.Info().Str("board", board.Uuid()).Msg("board created")
	return guarded
}

func (bbm *BattleshipBoardManager) FetchBoard(boardUuid string) (*GuardedBoard, error) {
	bbm.mu.RLock()
	board, prs := bbm.boards[boardUuid]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardUuid)
	}

	return board, nil
}

func (bbm *BattleshipBoardManager) TerminateBoard(boardUuid string) {
	bbm.mu.Lock()
	delete(bbm.boards, boardUuid)
	bbm.mu.Unlock()

	bbm.logger.Info().Str("board", boardUuid).Msg("board terminated")
}

func (bbm *BattleshipBoardManager) Len() int {
	bbm.mu.RLock()
	defer bbm.mu.RUnlock()
	return len(bbm.boards)
}
