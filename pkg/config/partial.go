package config

import (
	"github.com/bastiangx/hearme/internal/utils"
	"github.com/charmbracelet/log"
)

// tryPartialParse recovers every section that still decodes from a broken file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractInts(section, map[string]*int{
			"current_limit":    &config.Suggest.CurrentLimit,
			"max_previous":     &config.Suggest.MaxPrevious,
			"pattern_count":    &config.Suggest.PatternCount,
			"contextual_count": &config.Suggest.ContextualCount,
			"random_count":     &config.Suggest.RandomCount,
			"skill_count":      &config.Suggest.SkillCount,
			"recency_window":   &config.Suggest.RecencyWindow,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "context"); ok {
		extractInts(section, map[string]*int{
			"category_sample":           &config.Context.CategorySample,
			"connector_sample":          &config.Context.ConnectorSample,
			"fallback_sample":           &config.Context.FallbackSample,
			"fallback_connector_sample": &config.Context.FallbackConnectorSample,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "random"); ok {
		extractInts(section, map[string]*int{
			"growth_min": &config.Random.GrowthMin,
			"growth_max": &config.Random.GrowthMax,
			"skill_min":  &config.Random.SkillMin,
			"skill_max":  &config.Random.SkillMax,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "timing"); ok {
		extractInts(section, map[string]*int{
			"generation_delay_ms": &config.Timing.GenerationDelayMs,
			"settle_delay_ms":     &config.Timing.SettleDelayMs,
		})
	}
	if section, ok := utils.ExtractSection(tempConfig, "session"); ok {
		extractSessionConfig(section, &config.Session)
	}
	if section, ok := utils.ExtractSection(tempConfig, "vocab"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Vocab.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "predictor"); ok {
		extractPredictorConfig(section, &config.Predictor)
	}
	return config, nil
}

func extractInts(data map[string]any, fields map[string]*int) {
	for key, dst := range fields {
		if val, ok := utils.ExtractInt64(data, key); ok {
			*dst = val
		}
	}
}

// extractSessionConfig extracts session configuration from a map
func extractSessionConfig(data map[string]any, session *SessionConfig) {
	if val, ok := utils.ExtractString(data, "initial_text"); ok {
		session.InitialText = val
	}
	extractInts(data, map[string]*int{
		"min_words":         &session.MinWords,
		"max_words":         &session.MaxWords,
		"answer_max_chars":  &session.AnswerMaxChars,
		"message_max_words": &session.MessageMaxWords,
	})
}

// extractPredictorConfig extracts predictor configuration from a map
func extractPredictorConfig(data map[string]any, p *PredictorConfig) {
	if val, ok := utils.ExtractBool(data, "enabled"); ok {
		p.Enabled = val
	}
	if val, ok := utils.ExtractString(data, "endpoint"); ok {
		p.Endpoint = val
	}
	if val, ok := utils.ExtractString(data, "model"); ok {
		p.Model = val
	}
	if val, ok := utils.ExtractString(data, "api_key_env"); ok {
		p.APIKeyEnv = val
	}
	if val, ok := utils.ExtractInt64(data, "timeout_ms"); ok {
		p.TimeoutMs = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		p.MaxWords = val
	}
	if val, ok := utils.ExtractFloat(data, "rate_per_sec"); ok {
		p.RatePerSec = val
	}
}
