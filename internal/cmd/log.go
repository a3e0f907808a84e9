package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
)

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    plain(cfg, w),
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(out).Level(cfg.Log.Level).With().Timestamp().Logger()
}

// plain reports whether output to w should go without colours and borders.
func plain(cfg *config.Config, w io.Writer) bool {
	if cfg.Log.NoColor {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}
