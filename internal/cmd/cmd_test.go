package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/hyphengolang/prelude/testing/is"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
	"github.com/rapidmidiex/linkedlist/internal/render"
	"github.com/rapidmidiex/linkedlist/pkg/list"
)

func newApp(w io.Writer) *cli.App {
	return &cli.App{
		Name:      "dlist",
		Writer:    w,
		ErrWriter: w,
		Action:    GetVersion,
		Before:    Before,
		Flags:     Flags,
		Commands:  Commands,
	}
}

func TestGetVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newApp(&buf).Run([]string{"dlist"}))
	require.Equal(t, "dlist version: "+Version+"\n", buf.String())
}

func TestRunDemo(t *testing.T) {
	t.Run("single scenario", func(t *testing.T) {
		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"dlist", "--no-color", "demo", "remove-if"})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "created")
		require.Contains(t, buf.String(), "dropped")
		require.Contains(t, buf.String(), "scenario=remove-if")
	})

	t.Run("all scenarios", func(t *testing.T) {
		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"dlist", "--no-color", "demo"})
		require.NoError(t, err)
		for _, name := range []string{"pop", "clear", "remove-if"} {
			require.Contains(t, buf.String(), "scenario="+name)
		}
	})

	t.Run("unknown scenario", func(t *testing.T) {
		err := newApp(io.Discard).Run([]string{"dlist", "demo", "splice"})
		require.ErrorIs(t, err, ErrUnknownScenario)
	})

	t.Run("invalid log level", func(t *testing.T) {
		err := newApp(io.Discard).Run([]string{"dlist", "--log-level", "loud", "demo"})
		require.Error(t, err)
	})
}

func TestRunCheck(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"dlist", "--no-color", "check", "--seeds", "4", "--steps", "200", "--workers", "2"})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "all invariants held")
	})

	t.Run("flags from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dlist.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seeds: 2\nsteps: 50\n"), 0o600))

		var buf bytes.Buffer
		err := newApp(&buf).Run([]string{"dlist", "--no-color", "--load", path, "check"})
		require.NoError(t, err)
		require.Contains(t, buf.String(), "seeds=2")
		require.Contains(t, buf.String(), "steps=50")
	})

	t.Run("rejects zero steps", func(t *testing.T) {
		err := newApp(io.Discard).Run([]string{"dlist", "check", "--steps", "0"})
		require.ErrorIs(t, err, config.ErrInvalidSteps)
	})

	t.Run("rejects zero workers", func(t *testing.T) {
		err := newApp(io.Discard).Run([]string{"dlist", "check", "--workers", "0"})
		require.ErrorIs(t, err, config.ErrInvalidWorkers)
	})
}

func TestApply(t *testing.T) {
	answers := func(vs ...int) func(string) (int, error) {
		return func(string) (int, error) {
			if len(vs) == 0 {
				return 0, promptui.ErrEOF
			}
			v := vs[0]
			vs = vs[1:]
			return v, nil
		}
	}

	t.Run("session", func(t *testing.T) {
		is := is.New(t)

		l := list.New[int]()
		ask := answers(2, 1, 3, 4, 3)

		for _, op := range []string{opPushBack, opPushFront, opPushBack, opPushBack} {
			_, err := apply(l, op, ask)
			is.NoErr(err)
		}
		is.Equal(slices.Collect(l.All()), []int{1, 2, 3, 4}) // pushed to both ends

		msg, err := apply(l, opRemoveIf, ask)
		is.NoErr(err)
		is.Equal(msg, "removed 1")
		is.Equal(slices.Collect(l.All()), []int{1, 2, 4}) // multiples of 3 gone

		_, err = apply(l, opDouble, ask)
		is.NoErr(err)
		is.Equal(slices.Collect(l.All()), []int{2, 4, 8}) // doubled

		msg, _ = apply(l, opFront, ask)
		is.Equal(msg, "front: 2")
		msg, _ = apply(l, opBack, ask)
		is.Equal(msg, "back: 8")

		_, _ = apply(l, opPopFront, ask)
		_, _ = apply(l, opPopBack, ask)
		is.Equal(slices.Collect(l.All()), []int{4}) // both ends popped

		_, _ = apply(l, opClear, ask)
		msg, _ = apply(l, opFront, ask)
		is.Equal(msg, "front: (empty)")
		is.NoErr(l.Validate())
	})

	t.Run("prompt cancelled", func(t *testing.T) {
		l := list.New[int]()
		_, err := apply(l, opPushBack, answers())
		require.ErrorIs(t, err, promptui.ErrEOF)
		require.True(t, l.IsEmpty())
	})

	t.Run("zero divisor", func(t *testing.T) {
		l := list.New[int]()
		l.PushBack(1)
		_, err := apply(l, opRemoveIf, answers(0))
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Equal(t, 1, l.Len())
	})

	t.Run("unknown op", func(t *testing.T) {
		_, err := apply(list.New[int](), "splice", answers())
		require.True(t, errors.Is(err, ErrUnknownOp))
	})
}

func TestStep(t *testing.T) {
	answers := func(vs ...int) func(string) (int, error) {
		return func(string) (int, error) {
			if len(vs) == 0 {
				return 0, promptui.ErrInterrupt
			}
			v := vs[0]
			vs = vs[1:]
			return v, nil
		}
	}
	r := render.Renderer{Plain: true, Max: 8}

	t.Run("zero divisor keeps the shell going", func(t *testing.T) {
		var buf bytes.Buffer
		l := list.New[int]()
		l.PushBack(3)

		require.NoError(t, step(&buf, r, l, opRemoveIf, answers(0)))
		require.Contains(t, buf.String(), "error: divisor must not be zero")
		require.Equal(t, 1, l.Len())

		buf.Reset()
		require.NoError(t, step(&buf, r, l, opRemoveIf, answers(3)))
		require.Contains(t, buf.String(), "removed 1")
		require.Contains(t, buf.String(), "(empty)")
	})

	t.Run("interrupted prompt", func(t *testing.T) {
		var buf bytes.Buffer
		l := list.New[int]()

		require.NoError(t, step(&buf, r, l, opPushBack, answers()))
		require.Zero(t, buf.Len())
		require.True(t, l.IsEmpty())
	})

	t.Run("unknown op", func(t *testing.T) {
		err := step(io.Discard, r, list.New[int](), "splice", answers())
		require.ErrorIs(t, err, ErrUnknownOp)
	})
}

func TestValidateNumber(t *testing.T) {
	require.NoError(t, validateNumber("-12"))
	require.Error(t, validateNumber("twelve"))
}
