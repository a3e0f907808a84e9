package showobj

import (
	"github.com/rapidmidiex/linkedlist/pkg/list"
)

type Scenario struct {
	Name        string
	Description string
	Run         func(t *Tracker)
}

var Scenarios = []Scenario{
	{
		Name:        "pop",
		Description: "pops from both ends, then pushes to both ends and lets Close drop the rest",
		Run:         popScenario,
	},
	{
		Name:        "clear",
		Description: "clears a list of three objects, then reuses it",
		Run:         clearScenario,
	},
	{
		Name:        "remove-if",
		Description: "removes the objects with even numbers from a list of six",
		Run:         removeIfScenario,
	},
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func newList(t *Tracker) *list.List[*Object] {
	return list.New(list.WithLogger[*Object](t.log))
}

func popScenario(t *Tracker) {
	l := newList(t)
	defer l.Close()

	l.PushBack(t.New(0))
	l.PushBack(t.New(1))
	l.PushBack(t.New(2))

	l.PopBack()
	l.PopFront()

	l.PushFront(t.New(3))
	l.PushBack(t.New(4))
	l.PushFront(t.New(5))
}

func clearScenario(t *Tracker) {
	l := newList(t)
	defer l.Close()

	l.PushBack(t.New(0))
	l.PushBack(t.New(1))
	l.PushBack(t.New(2))

	l.Clear()

	l.PushBack(t.New(3))
}

func removeIfScenario(t *Tracker) {
	l := newList(t)
	defer l.Close()

	for n := uint32(0); n < 6; n++ {
		l.PushBack(t.New(n))
	}

	l.RemoveIf(func(o *Object) bool { return o.N%2 == 0 })
}
