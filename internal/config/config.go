package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvPrefix = "BATTLESHIP"
)

type Config struct {
	Stage        string `mapstructure:"stage"`
	LogLevel     string `mapstructure:"logLevel"`
	LogFormat    string `mapstructure:"logFormat"`
	ScenarioPath string `mapstructure:"scenarioPath"`
}

// LoadEnv reads a .env file outside of production. A missing file
// is fine; a malformed one is not.
func LoadEnv(path string) error {
	if os.Getenv("STAGE") == StageProd {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Load reads battleship.yaml from configDir if present, applies
// BATTLESHIP_* environment overrides and fills in defaults.
func Load(v *viper.Viper, configDir string) (Config, error) {
	v.SetDefault("stage", StageDev)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("scenarioPath", "scenario.yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// plain STAGE is honoured as well
	_ = v.BindEnv("stage", EnvPrefix+"_STAGE", "STAGE")

	v.SetConfigName("battleship")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, cerr.ErrReadConfig(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, cerr.ErrReadConfig(err)
	}

	if cfg.Stage != StageProd && cfg.Stage != StageDev {
		return Config{}, cerr.ErrInvalidStage(cfg.Stage)
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return Config{}, cerr.ErrInvalidLogFormat(cfg.LogFormat)
	}

	return cfg, nil
}
