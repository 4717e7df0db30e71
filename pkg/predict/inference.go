package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bastiangx/hearme/internal/logger"
	"github.com/bastiangx/hearme/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"golang.org/x/time/rate"
)

var (
	ErrRateLimited  = errors.New("inference rate limit reached")
	ErrNoPrediction = errors.New("inference returned no usable words")
)

// DefaultInferenceTimeout bounds a single inference call.
const DefaultInferenceTimeout = 1500 * time.Millisecond

// Predictor proposes next words for text.
type Predictor interface {
	Predict(ctx context.Context, text string) ([]string, error)
}

// InferenceConfig configures an InferenceClient.
type InferenceConfig struct {
	Endpoint   string // OpenAI-compatible chat completions URL
	Model      string
	APIKey     string
	MaxWords   int
	RatePerSec float64

	HTTPClient *http.Client
}

// InferenceClient asks a chat completion endpoint for likely next words.
// It yields zero or more lowercase single words, or an error.
type InferenceClient struct {
	cfg     InferenceConfig
	limiter *rate.Limiter
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

const systemPrompt = "You help someone put feelings into words. " +
	"Reply with likely next single words for their unfinished sentence, " +
	"lowercase, separated by commas, nothing else."

// NewInferenceClient returns a client. A non-positive RatePerSec disables limiting.
func NewInferenceClient(cfg InferenceConfig) *InferenceClient {
	if cfg.MaxWords <= 0 {
		cfg.MaxWords = 10
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	return &InferenceClient{cfg: cfg, limiter: rate.NewLimiter(limit, 1)}
}

// Predict implements Predictor.
func (c *InferenceClient) Predict(ctx context.Context, text string) ([]string, error) {
	if c.cfg.Endpoint == "" || c.cfg.Model == "" {
		return nil, errors.New("inference endpoint and model required")
	}
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}

	user := fmt.Sprintf("Sentence so far: %q\nGive up to %d next words.", text, c.cfg.MaxWords)
	reply, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}
	words := ParseWords(reply, c.cfg.MaxWords)
	if len(words) == 0 {
		return nil, ErrNoPrediction
	}
	return words, nil
}

func (c *InferenceClient) chat(ctx context.Context, messages []chatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   8 * c.cfg.MaxWords,
		Temperature: 0.7,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode chat request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", errors.Wrap(err, "chat request")
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errors.Wrapf(err, "decode chat response (status %d)", resp.StatusCode)
	}
	if payload.Error != nil {
		return "", errors.Newf("inference error: %s", payload.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("inference status %d", resp.StatusCode)
	}
	if len(payload.Choices) == 0 {
		return "", ErrNoPrediction
	}
	return payload.Choices[0].Message.Content, nil
}

func (c *InferenceClient) httpClient() *http.Client {
	if c.cfg.HTTPClient != nil {
		return c.cfg.HTTPClient
	}
	return &http.Client{Timeout: 5 * time.Second}
}

// ParseWords turns a free form reply into at most max distinct lowercase single words.
// Anything that is not a plain word after trimming punctuation is skipped.
func ParseWords(reply string, max int) []string {
	fields := strings.FieldsFunc(reply, func(r rune) bool {
		return r == ',' || r == '\n' || r == ' ' || r == '\t' || r == ';'
	})
	var words []string
	for _, f := range fields {
		w := strings.ToLower(utils.TrimPunct(f))
		if !utils.IsVocabWord(w) || strings.Contains(w, "-") {
			continue
		}
		words = append(words, w)
	}
	words = utils.Unique(words)
	if max > 0 && len(words) > max {
		words = words[:max]
	}
	return words
}

// Fallback runs Primary under a hard timeout and answers with Backup whenever
// Primary errors, times out or comes back empty. Failures are logged, never returned.
type Fallback struct {
	Primary Predictor
	Backup  *PatternMatcher
	Timeout time.Duration

	log *log.Logger
}

// NewFallback wires primary behind the pattern matcher.
func NewFallback(primary Predictor, backup *PatternMatcher, timeout time.Duration) *Fallback {
	if timeout <= 0 {
		timeout = DefaultInferenceTimeout
	}
	return &Fallback{Primary: primary, Backup: backup, Timeout: timeout, log: logger.New("predict")}
}

// Predict implements Predictor and never returns an error.
func (f *Fallback) Predict(ctx context.Context, text string) ([]string, error) {
	if f.Primary == nil {
		return f.Backup.NextWords(text), nil
	}
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	type result struct {
		words []string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		words, err := f.Primary.Predict(ctx, text)
		done <- result{words, err}
	}()

	select {
	case r := <-done:
		if r.err == nil && len(r.words) > 0 {
			return r.words, nil
		}
		if r.err == nil {
			r.err = ErrNoPrediction
		}
		f.logger().Debug("inference fell back to patterns", "err", r.err)
	case <-ctx.Done():
		f.logger().Debug("inference fell back to patterns", "err", ctx.Err())
	}
	return f.Backup.NextWords(text), nil
}

func (f *Fallback) logger() *log.Logger {
	if f.log != nil {
		return f.log
	}
	return log.Default()
}
