package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, suggest.DefaultLimits(), c.Limits())
	assert.Equal(t, 500, int(c.Timing.GenerationDelay().Milliseconds()))
	assert.Equal(t, 1000, int(c.Timing.SettleDelay().Milliseconds()))
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "config.toml", "[suggest]\ncurrent_limit = 12\n\n[vocab]\npath = \"words.yaml\"\n")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Suggest.CurrentLimit)
	assert.Equal(t, 200, c.Suggest.MaxPrevious)
	assert.Equal(t, "words.yaml", c.Vocab.Path)
	assert.Equal(t, "I ", c.Session.InitialText)
}

func TestPartialParseRecoversSections(t *testing.T) {
	// a value of the wrong type breaks strict decoding but not the generic map
	path := writeFile(t, "config.toml", `
[suggest]
current_limit = "lots"
max_previous = 50

[predictor]
enabled = true
endpoint = "http://localhost:8080/v1/chat/completions"
model = "small"
rate_per_sec = 4
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, c.Suggest.CurrentLimit, "bad value falls back to default")
	assert.Equal(t, 50, c.Suggest.MaxPrevious)
	assert.True(t, c.Predictor.Enabled)
	assert.Equal(t, "small", c.Predictor.Model)
	assert.InDelta(t, 4.0, c.Predictor.RatePerSec, 1e-9)
}

func TestUnparseableFileUsesDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", "[suggest\ncurrent_limit = = 3")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		mutate      func(*Config)
		description string
	}{
		{func(c *Config) { c.Suggest.CurrentLimit = 0 }, "zero current limit"},
		{func(c *Config) { c.Suggest.RecencyWindow = -1 }, "negative window"},
		{func(c *Config) { c.Random.GrowthMin = 30 }, "inverted growth band"},
		{func(c *Config) { c.Session.MinWords = 50 }, "inverted word band"},
		{func(c *Config) { c.Timing.SettleDelayMs = -5 }, "negative delay"},
		{func(c *Config) { c.Predictor.Enabled = true }, "predictor without endpoint"},
		{func(c *Config) {
			c.Predictor = PredictorConfig{Enabled: true, Endpoint: "x", Model: "m", TimeoutMs: 9000, MaxWords: 5}
		}, "predictor timeout too long"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			c := DefaultConfig()
			tc.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestLoadConfigWithPriority(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	custom := writeFile(t, "custom.toml", "[suggest]\ncurrent_limit = 9\n")
	c, path, err := LoadConfigWithPriority(custom)
	require.NoError(t, err)
	assert.Equal(t, custom, path)
	assert.Equal(t, 9, c.Suggest.CurrentLimit)

	t.Setenv(EnvConfigPath, custom)
	c, _, err = LoadConfigWithPriority("")
	require.NoError(t, err)
	assert.Equal(t, 9, c.Suggest.CurrentLimit)

	bad := writeFile(t, "bad.toml", "[suggest]\ncurrent_limit = 0\n")
	_, _, err = LoadConfigWithPriority(bad)
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	c, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), again)
}

func TestNewEngine(t *testing.T) {
	vocabPath := writeFile(t, "words.yaml", "categories:\n  skills: [pottery]\n")
	c := DefaultConfig()
	c.Vocab.Path = vocabPath
	c.Suggest.CurrentLimit = 5

	e, err := c.NewEngine(1)
	require.NoError(t, err)
	pools := e.GenerateSuggestions(context.Background(), "I ", suggest.Pools{})
	assert.LessOrEqual(t, len(pools.Current), 5)

	c.Vocab.Path = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = c.NewEngine(1)
	assert.Error(t, err)
}

func TestInferenceReadsKeyFromEnv(t *testing.T) {
	t.Setenv("TEST_HEARME_KEY", "secret")
	c := DefaultConfig()
	c.Predictor.APIKeyEnv = "TEST_HEARME_KEY"
	assert.Equal(t, "secret", c.Inference().APIKey)
}
