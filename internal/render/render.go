package render

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rapidmidiex/linkedlist/pkg/fp"
)

// Styles
var (
	nodeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	endStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#FF5F87")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Italic(true)
)

const arrow = " ⇄ "

// Renderer draws a list as a chain of boxed nodes between head and tail
// markers.
type Renderer struct {
	// Plain drops borders and colours, for pipes and logs.
	Plain bool
	// Max caps the number of nodes drawn; 0 draws all of them.
	Max int
}

func (r Renderer) Chain(seq iter.Seq[string], n int) string {
	if r.Max > 0 {
		seq = fp.Take(seq, r.Max)
	}
	cells := slices.Collect(seq)

	if len(cells) == 0 {
		if r.Plain {
			return "(empty)"
		}
		return emptyStyle.Render("(empty)")
	}

	more := ""
	if n > len(cells) {
		more = fmt.Sprintf("… +%d", n-len(cells))
	}

	if r.Plain {
		s := "head <-> [" + strings.Join(cells, "] <-> [") + "]"
		if more != "" {
			s += " <-> " + more
		}
		return s + " <-> tail"
	}

	boxes := fp.FMap(cells, func(c string) string { return nodeStyle.Render(c) })

	parts := []string{endStyle.Render("head")}
	for _, b := range boxes {
		parts = append(parts, arrow, b)
	}
	if more != "" {
		parts = append(parts, arrow, more)
	}
	parts = append(parts, arrow, endStyle.Render("tail"))

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// Values renders any sequence using fmt's default formatting.
func Values[T any](seq iter.Seq[T]) iter.Seq[string] {
	return fp.Map(seq, func(v T) string { return fmt.Sprint(v) })
}
