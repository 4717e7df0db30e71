package server

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/hearme/pkg/predict"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	defaultCompleteLimit = 10
	maxCompleteLimit     = 100
	maxPrefixLen         = 60
)

// Backend is everything a config produces that requests run against.
type Backend struct {
	Engine *suggest.Engine
	Vocab  *vocab.Store
}

// NewBackend pairs an engine over gen with gen's vocabulary.
func NewBackend(gen *predict.Generator, limits suggest.Limits) Backend {
	return Backend{Engine: suggest.NewEngine(gen, limits), Vocab: gen.Store()}
}

// Loader rebuilds the backend, typically from a freshly read config file.
type Loader func() (Backend, error)

// Options tune a Server. Zero values fall back to stdin/stdout and no reload.
type Options struct {
	// InitialText seeds sessions opened without text.
	InitialText string
	// Reload is called by Watch when a watched file changes.
	Reload Loader
	In     io.Reader
	Out    io.Writer
}

// Server handles session IPC.
type Server struct {
	mu       sync.RWMutex
	backend  Backend
	sessions map[string]*suggest.Session

	opts  Options
	dec   *msgpack.Decoder
	encMu sync.Mutex
	enc   *msgpack.Encoder
}

// NewServer creates a server over b.
func NewServer(b Backend, opts Options) *Server {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Server{
		backend:  b,
		sessions: make(map[string]*suggest.Session),
		opts:     opts,
		dec:      msgpack.NewDecoder(opts.In),
		enc:      msgpack.NewEncoder(opts.Out),
	}
}

// Start signals readiness and serves requests until the input closes or ctx is done.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting server.")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed, stopping server.")
				return nil
			}
			// A broken frame leaves the stream misaligned, nothing after it can be trusted.
			log.Errorf("Decoding request: %v", err)
			_ = s.send(ErrorResponse{Error: "invalid msgpack request", Code: 400})
			return errors.Wrap(err, "decoding request")
		}
		if err := s.send(s.Handle(ctx, req)); err != nil {
			return err
		}
	}
}

// Handle runs one request and returns the response frame.
func (s *Server) Handle(ctx context.Context, req Request) any {
	start := time.Now()
	resp, err := s.dispatch(ctx, req, start)
	if err != nil {
		log.Debugf("Request %q (%s) failed: %v", req.ID, req.Action, err)
		return errorResponse(req.ID, err)
	}
	return resp
}

func (s *Server) dispatch(ctx context.Context, req Request, start time.Time) (any, error) {
	switch req.Action {
	case ActionOpen:
		return s.open(req, start), nil
	case ActionGenerate:
		sess, err := s.session(req.Session)
		if err != nil {
			return nil, err
		}
		if req.Text != nil {
			sess.SetText(*req.Text)
		}
		return suggestion(req.ID, req.Session, sess.Generate(ctx), start), nil
	case ActionAccept:
		if strings.TrimSpace(req.Word) == "" {
			return nil, errors.Wrap(ErrBadRequest, "missing 'w' parameter")
		}
		sess, err := s.session(req.Session)
		if err != nil {
			return nil, err
		}
		return suggestion(req.ID, req.Session, sess.Apply(ctx, strings.TrimSpace(req.Word)), start), nil
	case ActionReset:
		sess, err := s.session(req.Session)
		if err != nil {
			return nil, err
		}
		sess.Reset()
		return suggestion(req.ID, req.Session, sess.Snapshot(), start), nil
	case ActionClose:
		if err := s.close(req.Session); err != nil {
			return nil, err
		}
		return StatusResponse{ID: req.ID, Status: "closed"}, nil
	case ActionComplete:
		return s.complete(req, start)
	case ActionHealth:
		return StatusResponse{ID: req.ID, Status: "ok", Sessions: s.SessionCount()}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAction, "%q", req.Action)
	}
}

func (s *Server) open(req Request, start time.Time) SuggestionResponse {
	text := s.opts.InitialText
	if req.Text != nil {
		text = *req.Text
	}
	id := uuid.NewString()

	s.mu.Lock()
	sess := suggest.NewSession(s.backend.Engine, text)
	s.sessions[id] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	log.Debugf("Opened session %s (%d open)", id, n)
	return suggestion(req.ID, id, sess.Snapshot(), start)
}

func (s *Server) close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.Wrapf(ErrUnknownSession, "%q", id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *Server) session(id string) (*suggest.Session, error) {
	if id == "" {
		return nil, errors.Wrap(ErrBadRequest, "missing 'sid' parameter")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSession, "%q", id)
	}
	return sess, nil
}

func (s *Server) complete(req Request, start time.Time) (any, error) {
	prefix := strings.TrimSpace(req.Prefix)
	if prefix == "" {
		return nil, errors.Wrap(ErrBadRequest, "missing 'p' parameter")
	}
	if len(prefix) > maxPrefixLen {
		return nil, errors.Wrapf(ErrBadRequest, "prefix exceeds maximum length of %d characters", maxPrefixLen)
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultCompleteLimit
	}
	limit = min(limit, maxCompleteLimit)

	s.mu.RLock()
	store := s.backend.Vocab
	s.mu.RUnlock()

	words := orEmpty(store.Complete(prefix, limit))
	return CompletionResponse{
		ID:          req.ID,
		Suggestions: words,
		Count:       len(words),
		TimeTaken:   time.Since(start).Microseconds(),
	}, nil
}

// Swap installs b for new sessions and for the next cycle of every open one.
// Pools already shown are kept.
func (s *Server) Swap(b Backend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = b
	for _, sess := range s.sessions {
		sess.SetEngine(b.Engine)
	}
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Server) send(v any) error {
	s.encMu.Lock()
	defer s.encMu.Unlock()
	if err := s.enc.Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
		return errors.Wrap(err, "encoding response")
	}
	return nil
}

func suggestion(id, sid string, snap suggest.Snapshot, start time.Time) SuggestionResponse {
	return SuggestionResponse{
		ID:         id,
		Session:    sid,
		Text:       snap.Text,
		Current:    orEmpty(snap.Current),
		Previous:   orEmpty(snap.Previous),
		Generation: snap.Gen,
		TimeTaken:  time.Since(start).Microseconds(),
	}
}

func errorResponse(id string, err error) ErrorResponse {
	code := 500
	switch {
	case errors.Is(err, ErrUnknownSession):
		code = 404
	case errors.Is(err, ErrBadRequest), errors.Is(err, ErrUnknownAction):
		code = 400
	}
	return ErrorResponse{ID: id, Error: err.Error(), Code: code}
}

// orEmpty keeps clients from seeing nil where they expect an array.
func orEmpty(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
