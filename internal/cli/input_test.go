package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/hearme/pkg/predict"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(input string) (*InputHandler, *bytes.Buffer) {
	store := vocab.Builtin()
	gen := predict.NewGenerator(store, predict.NewSampler(4), predict.DefaultOptions())
	sess := suggest.NewSession(suggest.NewEngine(gen, suggest.DefaultLimits()), "I ")
	h := NewInputHandler(sess, store, 7, 40)
	var out bytes.Buffer
	h.SetIO(strings.NewReader(input), &out)
	return h, &out
}

func TestInputHandler(t *testing.T) {
	testCases := []struct {
		input       string
		text        string
		contains    []string
		description string
	}{
		{"feel\n", "I feel ", []string{"Need 5 more words to continue", "suggestions:"}, "append and generate"},
		{"feel\n+tired\n", "I feel tired ", []string{"> I feel tired "}, "accept a word"},
		{"?grat\n", "I ", []string{"grateful", "gratitude"}, "vocabulary lookup"},
		{"?zq\n", "I ", []string{"No words found"}, "empty lookup"},
		{"need help\n!reset\n", "I ", []string{"No suggestions for this text"}, "reset"},
		{"+\n", "I ", []string{"Nothing to accept"}, "blank accept"},
		{"\n\n!text\n", "I ", []string{"> I "}, "blank lines and draft"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			h, out := newTestHandler(tc.input)
			require.NoError(t, h.Start(context.Background()))
			assert.Equal(t, tc.text, h.session.Text())
			for _, s := range tc.contains {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestAcceptedWordLeavesPools(t *testing.T) {
	h, _ := newTestHandler("I feel\n")
	require.NoError(t, h.Start(context.Background()))
	word := h.session.Snapshot().Current[0]

	h.SetIO(strings.NewReader("+"+word+"\n"), &bytes.Buffer{})
	require.NoError(t, h.Start(context.Background()))
	snap := h.session.Snapshot()
	assert.NotContains(t, snap.Current, word)
	assert.NotContains(t, snap.Previous, word)
}
