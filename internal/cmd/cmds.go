package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
	"github.com/rapidmidiex/linkedlist/internal/showobj"
)

var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrLeak            = errors.New("objects leaked or dropped twice")
)

var Flags = []cli.Flag{
	altsrc.NewStringFlag(&cli.StringFlag{
		Name:    config.FlagLogLevel,
		Value:   "info",
		Usage:   "Log level (trace shows every slot the list allocates and releases)",
		EnvVars: []string{"DLIST_LOG_LEVEL"},
	}),
	altsrc.NewBoolFlag(&cli.BoolFlag{
		Name:    config.FlagNoColor,
		Usage:   "Disable colours and borders in output",
		EnvVars: []string{"DLIST_NO_COLOR", "NO_COLOR"},
	}),
	&cli.StringFlag{
		Name:    config.FlagLoad,
		Aliases: []string{"l"},
		Usage:   "Load flag values from a YAML file",
	},
}

var CheckFlags = []cli.Flag{
	altsrc.NewInt64Flag(&cli.Int64Flag{
		Name:    config.FlagSeed,
		Value:   1,
		Usage:   "First seed to check",
		Aliases: []string{"s"},
		EnvVars: []string{"DLIST_SEED"},
	}),
	altsrc.NewIntFlag(&cli.IntFlag{
		Name:    config.FlagSeeds,
		Value:   32,
		Usage:   "Number of consecutive seeds to check",
		Aliases: []string{"n"},
		EnvVars: []string{"DLIST_SEEDS"},
	}),
	altsrc.NewIntFlag(&cli.IntFlag{
		Name:    config.FlagSteps,
		Value:   1000,
		Usage:   "Operations applied per seed",
		EnvVars: []string{"DLIST_STEPS"},
	}),
	altsrc.NewIntFlag(&cli.IntFlag{
		Name:    config.FlagWorkers,
		Value:   4,
		Usage:   "Seeds checked at once, each on its own list",
		Aliases: []string{"w"},
		EnvVars: []string{"DLIST_WORKERS"},
	}),
}

var Commands = []*cli.Command{
	{
		Name:        "demo",
		Category:    "run",
		Aliases:     []string{"d"},
		Usage:       "Show objects being created and dropped by list operations",
		Description: scenarioHelp(),
		ArgsUsage:   "[scenario...]",
		Action:      runDemo,
	},
	{
		Name:        "check",
		Category:    "run",
		Aliases:     []string{"c"},
		Usage:       "Check list invariants against a reference model",
		Description: "Applies random operation sequences to lists and to slices and compares them after every step.",
		Before:      altsrc.InitInputSourceWithContext(CheckFlags, altsrc.NewYamlSourceFromFlagFunc(config.FlagLoad)),
		Action:      runCheck,
		Flags:       CheckFlags,
	},
	{
		Name:     "repl",
		Category: "interactive",
		Aliases:  []string{"r"},
		Usage:    "Edit a list of integers interactively",
		Action:   runREPL,
	},
}

// Before loads global flag values from the --load file.
var Before = altsrc.InitInputSourceWithContext(Flags, altsrc.NewYamlSourceFromFlagFunc(config.FlagLoad))

const Version = "v0.1.0"

func GetVersion(cCtx *cli.Context) error {
	_, err := fmt.Fprintln(cCtx.App.Writer, "dlist version: "+Version)
	return err
}

func scenarioHelp() string {
	s := "Scenarios:\n"
	for _, sc := range showobj.Scenarios {
		s += fmt.Sprintf("  %-10s %s\n", sc.Name, sc.Description)
	}
	return s
}
