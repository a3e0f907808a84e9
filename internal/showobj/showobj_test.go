package showobj_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/rapidmidiex/linkedlist/internal/showobj"
)

type event struct {
	Message string `json:"message"`
	N       uint32 `json:"n"`
}

func events(t *testing.T, buf *bytes.Buffer, msg string) []uint32 {
	t.Helper()

	var ns []uint32
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var e event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		if e.Message == msg {
			ns = append(ns, e.N)
		}
	}
	require.NoError(t, sc.Err())
	return ns
}

func TestScenarios(t *testing.T) {
	type testcase struct {
		name    string
		created []uint32
		dropped []uint32
	}

	tt := []testcase{
		{
			name:    "pop",
			created: []uint32{0, 1, 2, 3, 4, 5},
			dropped: []uint32{2, 0, 5, 3, 1, 4},
		},
		{
			name:    "clear",
			created: []uint32{0, 1, 2, 3},
			dropped: []uint32{0, 1, 2, 3},
		},
		{
			name:    "remove-if",
			created: []uint32{0, 1, 2, 3, 4, 5},
			dropped: []uint32{0, 2, 4, 1, 3, 5},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tr := showobj.NewTracker(zerolog.New(&buf).Level(zerolog.InfoLevel))

			s, ok := showobj.Lookup(tc.name)
			require.True(t, ok)
			s.Run(tr)

			require.Equal(t, len(tc.created), tr.Created())
			require.Equal(t, tr.Created(), tr.Dropped())
			require.Zero(t, tr.Live())
			require.Zero(t, tr.Doubles())

			logged := buf.Bytes()
			require.Equal(t, tc.created, events(t, bytes.NewBuffer(logged), "created"))
			require.Equal(t, tc.dropped, events(t, bytes.NewBuffer(logged), "dropped"))
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, ok := showobj.Lookup("splice")
	require.False(t, ok)
}

func TestDoubleDrop(t *testing.T) {
	tr := showobj.NewTracker(zerolog.Nop())

	o := tr.New(7)
	require.NotEmpty(t, o.ID)
	require.NotEmpty(t, o.Label)
	require.Equal(t, 1, tr.Live())

	o.Finalize()
	o.Finalize()

	require.Equal(t, 1, tr.Dropped())
	require.Equal(t, 1, tr.Doubles())
	require.Zero(t, tr.Live())
}
