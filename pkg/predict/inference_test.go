package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, reply string, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "bad key"}})
			return
		}
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": reply}}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseWords(t *testing.T) {
	testCases := []struct {
		reply       string
		max         int
		expected    []string
		description string
	}{
		{"calm, Grateful, tired", 10, []string{"calm", "grateful", "tired"}, "comma list"},
		{"1. calm\n2. calm\n3. hopeful.", 10, []string{"calm", "hopeful"}, "numbered list with repeats"},
		{"self-worth, ok", 10, []string{"ok"}, "hyphenated phrases skipped"},
		{"a b c d", 2, []string{"a", "b"}, "capped"},
		{"", 5, []string{}, "empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseWords(tc.reply, tc.max))
		})
	}
}

func TestInferenceClientPredict(t *testing.T) {
	srv := chatServer(t, "calm, steady, seen", 0)
	c := NewInferenceClient(InferenceConfig{Endpoint: srv.URL, Model: "m", APIKey: "secret", MaxWords: 2})

	words, err := c.Predict(context.Background(), "I feel")
	require.NoError(t, err)
	assert.Equal(t, []string{"calm", "steady"}, words)
}

func TestInferenceClientErrors(t *testing.T) {
	srv := chatServer(t, "calm", 0)

	_, err := NewInferenceClient(InferenceConfig{}).Predict(context.Background(), "I")
	assert.Error(t, err, "missing endpoint")

	_, err = NewInferenceClient(InferenceConfig{Endpoint: srv.URL, Model: "m", APIKey: "wrong"}).
		Predict(context.Background(), "I")
	assert.ErrorContains(t, err, "bad key")

	empty := chatServer(t, "!!! ...", 0)
	_, err = NewInferenceClient(InferenceConfig{Endpoint: empty.URL, Model: "m", APIKey: "secret"}).
		Predict(context.Background(), "I")
	assert.True(t, errors.Is(err, ErrNoPrediction))

	limited := NewInferenceClient(InferenceConfig{Endpoint: srv.URL, Model: "m", APIKey: "secret", RatePerSec: 0.001})
	_, err = limited.Predict(context.Background(), "I")
	require.NoError(t, err)
	_, err = limited.Predict(context.Background(), "I")
	assert.True(t, errors.Is(err, ErrRateLimited))
}

type stubPredictor struct {
	words []string
	err   error
	delay time.Duration
}

func (s stubPredictor) Predict(ctx context.Context, _ string) ([]string, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.words, s.err
}

func TestFallback(t *testing.T) {
	patterns := NewPatternMatcher(DefaultRules, DefaultNextWords)
	want := patterns.NextWords("I ")

	testCases := []struct {
		primary     Predictor
		expected    []string
		description string
	}{
		{stubPredictor{words: []string{"seen"}}, []string{"seen"}, "primary answers"},
		{stubPredictor{err: errors.New("boom")}, want, "primary errors"},
		{stubPredictor{}, want, "primary empty"},
		{stubPredictor{words: []string{"late"}, delay: time.Second}, want, "primary too slow"},
		{nil, want, "no primary"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f := NewFallback(tc.primary, patterns, 50*time.Millisecond)
			start := time.Now()
			got, err := f.Predict(context.Background(), "I ")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Less(t, time.Since(start), 500*time.Millisecond)
		})
	}
}

func TestFallbackAgainstSlowServer(t *testing.T) {
	srv := chatServer(t, "calm", 300*time.Millisecond)
	client := NewInferenceClient(InferenceConfig{Endpoint: srv.URL, Model: "m", APIKey: "secret"})
	patterns := NewPatternMatcher(DefaultRules, DefaultNextWords)

	got, err := NewFallback(client, patterns, 50*time.Millisecond).Predict(context.Background(), "I can")
	require.NoError(t, err)
	assert.Equal(t, patterns.NextWords("I can"), got)
}
