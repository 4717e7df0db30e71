package config

import (
	"os"

	"github.com/bastiangx/hearme/pkg/predict"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/charmbracelet/log"
)

// Limits maps the suggest section onto pool caps.
func (c *Config) Limits() suggest.Limits {
	return suggest.Limits{
		Current:    c.Suggest.CurrentLimit,
		Previous:   c.Suggest.MaxPrevious,
		Pattern:    c.Suggest.PatternCount,
		Contextual: c.Suggest.ContextualCount,
		Random:     c.Suggest.RandomCount,
		Skills:     c.Suggest.SkillCount,
	}
}

// PredictOptions maps the context and random sections onto generator options.
func (c *Config) PredictOptions() predict.Options {
	return predict.Options{
		Context: predict.ContextOptions{
			CategorySample:          c.Context.CategorySample,
			ConnectorSample:         c.Context.ConnectorSample,
			FallbackSample:          c.Context.FallbackSample,
			FallbackConnectorSample: c.Context.FallbackConnectorSample,
		},
		GrowthMin:     c.Random.GrowthMin,
		GrowthMax:     c.Random.GrowthMax,
		SkillMin:      c.Random.SkillMin,
		SkillMax:      c.Random.SkillMax,
		RecencyWindow: c.Suggest.RecencyWindow,
	}
}

// Inference maps the predictor section onto a client config, reading the key from the environment.
func (c *Config) Inference() predict.InferenceConfig {
	var key string
	if c.Predictor.APIKeyEnv != "" {
		key = os.Getenv(c.Predictor.APIKeyEnv)
	}
	return predict.InferenceConfig{
		Endpoint:   c.Predictor.Endpoint,
		Model:      c.Predictor.Model,
		APIKey:     key,
		MaxWords:   c.Predictor.MaxWords,
		RatePerSec: c.Predictor.RatePerSec,
	}
}

// NewGenerator loads the vocabulary and builds the candidate sources.
// Seed 0 picks a random seed.
func (c *Config) NewGenerator(seed uint64) (*predict.Generator, error) {
	store, err := vocab.LoadFile(c.Vocab.Path)
	if err != nil {
		return nil, err
	}
	gen := predict.NewGenerator(store, predict.NewSampler(seed), c.PredictOptions())
	if c.Predictor.Enabled {
		log.Debugf("Inference predictor enabled: %s (%s)", c.Predictor.Endpoint, c.Predictor.Model)
		client := predict.NewInferenceClient(c.Inference())
		gen = gen.WithPredictor(predict.NewFallback(client, gen.Patterns(), c.Predictor.Timeout()))
	}
	return gen, nil
}

// NewEngine builds a suggestion engine from the config.
func (c *Config) NewEngine(seed uint64) (*suggest.Engine, error) {
	gen, err := c.NewGenerator(seed)
	if err != nil {
		return nil, err
	}
	return suggest.NewEngine(gen, c.Limits()), nil
}
