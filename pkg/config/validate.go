package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const maxInferenceTimeout = 5 * time.Second

// Validate checks values that decode fine but cannot work.
func (c *Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"suggest.current_limit", c.Suggest.CurrentLimit},
		{"suggest.max_previous", c.Suggest.MaxPrevious},
		{"suggest.pattern_count", c.Suggest.PatternCount},
		{"suggest.contextual_count", c.Suggest.ContextualCount},
		{"suggest.random_count", c.Suggest.RandomCount},
		{"suggest.skill_count", c.Suggest.SkillCount},
		{"suggest.recency_window", c.Suggest.RecencyWindow},
		{"context.category_sample", c.Context.CategorySample},
		{"context.connector_sample", c.Context.ConnectorSample},
		{"context.fallback_sample", c.Context.FallbackSample},
		{"context.fallback_connector_sample", c.Context.FallbackConnectorSample},
		{"random.growth_min", c.Random.GrowthMin},
		{"random.skill_min", c.Random.SkillMin},
		{"session.min_words", c.Session.MinWords},
		{"session.answer_max_chars", c.Session.AnswerMaxChars},
		{"session.message_max_words", c.Session.MessageMaxWords},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return invalid(errors.Newf("%s must be positive, got %d", p.name, p.val))
		}
	}

	bands := []struct {
		name     string
		min, max int
	}{
		{"random.growth", c.Random.GrowthMin, c.Random.GrowthMax},
		{"random.skill", c.Random.SkillMin, c.Random.SkillMax},
		{"session words", c.Session.MinWords, c.Session.MaxWords},
	}
	for _, b := range bands {
		if b.min > b.max {
			return invalid(errors.Newf("%s band is inverted: min %d > max %d", b.name, b.min, b.max))
		}
	}

	if c.Timing.GenerationDelayMs < 0 || c.Timing.SettleDelayMs < 0 {
		return invalid(errors.New("timing delays cannot be negative"))
	}

	if c.Predictor.Enabled {
		if c.Predictor.Endpoint == "" || c.Predictor.Model == "" {
			return invalid(errors.WithHint(
				errors.New("predictor enabled without endpoint or model"),
				"set predictor.endpoint and predictor.model, or predictor.enabled = false",
			))
		}
		if t := c.Predictor.Timeout(); t <= 0 || t > maxInferenceTimeout {
			return invalid(errors.Newf("predictor.timeout_ms must be within (0, %d], got %d",
				maxInferenceTimeout.Milliseconds(), c.Predictor.TimeoutMs))
		}
		if c.Predictor.MaxWords <= 0 {
			return invalid(errors.Newf("predictor.max_words must be positive, got %d", c.Predictor.MaxWords))
		}
	}
	return nil
}

func invalid(err error) error {
	return errors.WithHint(
		errors.Mark(err, ErrInvalid),
		"fix the value in config.toml or run `hearme config rebuild` to start from defaults",
	)
}
