package showobj

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/hyphengolang/prelude/types/suid"
	"github.com/rs/zerolog"
)

// Object is a list element that reports its own creation and release.
type Object struct {
	ID    suid.SUID
	N     uint32
	Label string

	t *Tracker
}

// Finalize records the release of o with its tracker.
func (o *Object) Finalize() { o.t.drop(o) }

// Tracker creates Objects and counts their lifecycle events.
type Tracker struct {
	log     zerolog.Logger
	live    map[suid.SUID]*Object
	created int
	dropped int
	doubles int
}

func NewTracker(log zerolog.Logger) *Tracker {
	return &Tracker{log: log, live: make(map[suid.SUID]*Object)}
}

func (t *Tracker) New(n uint32) *Object {
	o := &Object{
		ID:    suid.NewUUID().ShortUUID(),
		N:     n,
		Label: gofakeit.NounAbstract(),
		t:     t,
	}

	t.live[o.ID] = o
	t.created++
	t.log.Info().Uint32("n", o.N).Str("id", o.ID.String()).Str("label", o.Label).Msg("created")
	return o
}

func (t *Tracker) drop(o *Object) {
	if _, ok := t.live[o.ID]; !ok {
		t.doubles++
		t.log.Error().Uint32("n", o.N).Str("id", o.ID.String()).Msg("dropped twice")
		return
	}

	delete(t.live, o.ID)
	t.dropped++
	t.log.Info().Uint32("n", o.N).Str("id", o.ID.String()).Str("label", o.Label).Msg("dropped")
}

func (t *Tracker) Created() int { return t.created }
func (t *Tracker) Dropped() int { return t.dropped }
func (t *Tracker) Live() int    { return len(t.live) }

// Doubles counts objects finalized more than once.
func (t *Tracker) Doubles() int { return t.doubles }
