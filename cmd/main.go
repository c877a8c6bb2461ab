package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"

	"github.com/saeidalz13/battleship-engine/internal/config"
	"github.com/saeidalz13/battleship-engine/internal/logging"
	"github.com/saeidalz13/battleship-engine/internal/replay"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

// Usage: battleship [scenario-file]
// Without an argument the scenario path comes from configuration.
func main() {
	if err := config.LoadEnv(".env"); err != nil {
		panic(err)
	}

	cfg, err := config.Load(viper.New(), ".")
	if err != nil {
		panic(err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	scenarioPath := cfg.ScenarioPath
	if len(os.Args) > 1 {
		scenarioPath = os.Args[1]
	}

	scenario, err := replay.LoadScenario(scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", scenarioPath).Msg("failed to load scenario")
	}

	boardManager := mb.NewBattleshipBoardManager(logger)
	board := boardManager.CreateBoard()
	defer boardManager.TerminateBoard(board.Uuid())

	report, err := replay.NewRunner(logger).Run(board, scenario)
	if err != nil {
		logger.Error().Err(err).Str("path", scenarioPath).Msg("failed to replay scenario")
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
	}
}
