package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/rapidmidiex/linkedlist/internal/cmd/config"
	"github.com/rapidmidiex/linkedlist/internal/render"
	"github.com/rapidmidiex/linkedlist/pkg/list"
)

const (
	opPushFront = "push front"
	opPushBack  = "push back"
	opPopFront  = "pop front"
	opPopBack   = "pop back"
	opFront     = "front"
	opBack      = "back"
	opRemoveIf  = "remove multiples"
	opDouble    = "double all"
	opClear     = "clear"
	opQuit      = "quit"
)

var replOps = []string{
	opPushFront, opPushBack, opPopFront, opPopBack, opFront, opBack,
	opRemoveIf, opDouble, opClear, opQuit,
}

var (
	ErrUnknownOp    = errors.New("unknown operation")
	ErrInvalidInput = errors.New("invalid input")
)

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} ",
	Valid:   "{{ . | green }} ",
	Invalid: "{{ . | red }} ",
	Success: "{{ . | bold }} ",
}

func validateNumber(v string) error {
	if _, err := strconv.Atoi(v); err != nil {
		return errors.New("invalid number")
	}
	return nil
}

func promptInt(label string) (int, error) {
	p := promptui.Prompt{
		Label:     label,
		Validate:  validateNumber,
		Templates: templates,
	}

	s, err := p.Run()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

func runREPL(cCtx *cli.Context) error {
	cfg, err := config.FromContext(cCtx)
	if err != nil {
		return err
	}

	w := cCtx.App.Writer
	r := render.Renderer{Plain: plain(cfg, w), Max: 16}

	l := list.New(list.WithLogger[int](newLogger(cfg, w)))
	defer l.Close()

	sel := promptui.Select{
		Label: "Operation",
		Items: replOps,
		Size:  len(replOps),
	}

	for {
		_, op, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}
		if op == opQuit {
			return nil
		}

		if err := step(w, r, l, op, promptInt); err != nil {
			return err
		}
	}
}

// step applies op and prints the outcome. Cancelled prompts and bad operands
// only abandon the current operation.
func step(w io.Writer, r render.Renderer, l *list.List[int], op string, ask func(label string) (int, error)) error {
	msg, err := apply(l, op, ask)
	switch {
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return nil
	case errors.Is(err, ErrInvalidInput):
		fmt.Fprintln(w, "error:", err)
		return nil
	case err != nil:
		return err
	}

	if msg != "" {
		fmt.Fprintln(w, msg)
	}
	fmt.Fprintln(w, r.Chain(render.Values(l.All()), l.Len()))
	return nil
}

// apply runs one REPL operation against l, asking for operands through ask,
// and returns a line to show the user.
func apply(l *list.List[int], op string, ask func(label string) (int, error)) (string, error) {
	switch op {
	case opPushFront, opPushBack:
		v, err := ask("Value")
		if err != nil {
			return "", err
		}
		if op == opPushFront {
			l.PushFront(v)
		} else {
			l.PushBack(v)
		}
		return "", nil
	case opPopFront:
		l.PopFront()
		return "", nil
	case opPopBack:
		l.PopBack()
		return "", nil
	case opFront:
		return describe("front", l.Front), nil
	case opBack:
		return describe("back", l.Back), nil
	case opRemoveIf:
		d, err := ask("Remove multiples of")
		if err != nil {
			return "", err
		}
		if d == 0 {
			return "", errors.Wrap(ErrInvalidInput, "divisor must not be zero")
		}
		n := l.RemoveIf(func(v int) bool { return v%d == 0 })
		return fmt.Sprintf("removed %d", n), nil
	case opDouble:
		for p := range l.AllMut() {
			*p *= 2
		}
		return "", nil
	case opClear:
		l.Clear()
		return "", nil

	default:
		return "", errors.Wrapf(ErrUnknownOp, "%q", op)
	}
}

func describe(end string, get func() (int, bool)) string {
	v, ok := get()
	if !ok {
		return end + ": (empty)"
	}
	return fmt.Sprintf("%s: %d", end, v)
}
