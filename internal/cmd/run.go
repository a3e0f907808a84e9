package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
	"github.com/rapidmidiex/linkedlist/internal/model"
	"github.com/rapidmidiex/linkedlist/internal/showobj"
	"github.com/rapidmidiex/linkedlist/pkg/fp"
)

func runDemo(cCtx *cli.Context) error {
	cfg, err := config.FromContext(cCtx)
	if err != nil {
		return err
	}
	log := newLogger(cfg, cCtx.App.Writer)

	names := cCtx.Args().Slice()
	if len(names) == 0 {
		names = fp.FMap(showobj.Scenarios, func(s showobj.Scenario) string { return s.Name })
	}

	for _, name := range names {
		s, ok := showobj.Lookup(name)
		if !ok {
			return errors.Wrapf(ErrUnknownScenario, "%q", name)
		}

		sLog := log.With().Str("scenario", s.Name).Logger()
		sLog.Info().Msg(s.Description)

		tr := showobj.NewTracker(sLog)
		s.Run(tr)

		if tr.Live() != 0 || tr.Doubles() != 0 {
			return errors.Wrapf(ErrLeak, "scenario %s: %d live, %d dropped twice", s.Name, tr.Live(), tr.Doubles())
		}
		sLog.Info().Int("created", tr.Created()).Int("dropped", tr.Dropped()).Msg("done")
	}

	return nil
}

func runCheck(cCtx *cli.Context) error {
	cfg, err := config.FromContext(cCtx)
	if err != nil {
		return err
	}
	if err := cfg.Check.Validate(); err != nil {
		return err
	}
	log := newLogger(cfg, cCtx.App.Writer)

	sCtx, cancel := signal.NotifyContext(
		cCtx.Context,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	log.Info().
		Int64("seed", cfg.Check.Seed).
		Int("seeds", cfg.Check.Seeds).
		Int("steps", cfg.Check.Steps).
		Int("workers", cfg.Check.Workers).
		Msg("checking")

	start := time.Now()
	results, err := model.CheckAll(sCtx, model.Seeds(cfg.Check.Seed, cfg.Check.Seeds), cfg.Check.Steps, cfg.Check.Workers)

	var pushed, finalized, taken int
	for _, res := range results {
		if res == nil {
			continue
		}
		pushed += res.Pushed
		finalized += res.Finalized
		taken += res.Taken
	}

	if err != nil {
		log.Error().Err(err).Msg("check failed")
		return err
	}

	log.Info().
		Int("pushed", pushed).
		Int("finalized", finalized).
		Int("taken", taken).
		Dur("took", time.Since(start)).
		Msg("all invariants held")
	return nil
}
