package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Flag names, shared by the flag definitions and FromContext.
const (
	FlagLoad     = "load"
	FlagLogLevel = "log-level"
	FlagNoColor  = "no-color"
	FlagSeed     = "seed"
	FlagSeeds    = "seeds"
	FlagSteps    = "steps"
	FlagWorkers  = "workers"
)

var (
	ErrInvalidSteps   = errors.New("steps must be positive")
	ErrInvalidSeeds   = errors.New("seeds must be positive")
	ErrInvalidWorkers = errors.New("workers must be positive")
)

type CheckConfig struct {
	Seed    int64
	Seeds   int
	Steps   int
	Workers int
}

type LogConfig struct {
	Level   zerolog.Level
	NoColor bool
}

type Config struct {
	Check CheckConfig
	Log   LogConfig
}

var envFiles = []string{"dlist.env", ".env"}

// LoadEnvFile loads dlist.env and .env, when present, into the process
// environment. Missing files are not an error and variables that are already
// set keep their value.
func LoadEnvFile(names ...string) error {
	if len(names) == 0 {
		names = envFiles
	}

	var found []string
	for _, name := range names {
		if _, err := os.Stat(name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "dlist: couldn't stat env file %s", name)
		}
		found = append(found, name)
	}

	if len(found) == 0 {
		return nil
	}
	return errors.Wrap(godotenv.Load(found...), "dlist: couldn't read env")
}

// FromContext builds a Config from parsed flags. Flags fall back to their
// environment variables and then to a YAML file given with --load.
func FromContext(cCtx *cli.Context) (*Config, error) {
	level, err := zerolog.ParseLevel(cCtx.String(FlagLogLevel))
	if err != nil {
		return nil, errors.Wrapf(err, "dlist: invalid --%s", FlagLogLevel)
	}

	c := &Config{
		Check: CheckConfig{
			Seed:    cCtx.Int64(FlagSeed),
			Seeds:   cCtx.Int(FlagSeeds),
			Steps:   cCtx.Int(FlagSteps),
			Workers: cCtx.Int(FlagWorkers),
		},
		Log: LogConfig{
			Level:   level,
			NoColor: cCtx.Bool(FlagNoColor),
		},
	}

	return c, nil
}

// Validate rejects non-positive knobs for the check command.
func (c CheckConfig) Validate() error {
	if c.Steps < 1 {
		return ErrInvalidSteps
	}
	if c.Seeds < 1 {
		return ErrInvalidSeeds
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	return nil
}
