/*
Package server exposes writing sessions over msgpack IPC.

A client talks to the server through stdin/stdout. Every frame is a single
msgpack map; requests carry an ID that the matching response echoes back.
Logs go to stderr so the stdout stream stays clean.

# IPC

The first frame the server writes is a readiness signal:

	{"status": "ready"}

A client opens a session, then asks for suggestions as the writer types:

	{"id": "r1", "a": "open", "t": "I feel "}
	{"id": "r2", "a": "generate", "sid": "9b0c...", "t": "I feel tired and"}

Suggestion responses carry both pools and the generation that produced them:

	{"id": "r2", "sid": "9b0c...", "t": "I feel tired and", "s": ["alone", ...], "ps": [...], "g": 3, "tm": 41}

Accepting a word appends it to the session text and runs the follow up cycle:

	{"id": "r3", "a": "accept", "sid": "9b0c...", "w": "alone"}

Plain prefix completion against the vocabulary needs no session:

	{"id": "r4", "a": "complete", "p": "grat", "l": 5}

# Actions

open, generate, accept, reset and close manage sessions. complete looks words
up in the vocabulary. health reports the number of open sessions.

Errors use HTTP like codes: 400 for malformed requests, 404 for unknown
sessions and 500 for anything the server got wrong.

Timings in responses are in microseconds.
*/
package server

import "github.com/cockroachdb/errors"

// Actions understood by the server.
const (
	ActionOpen     = "open"
	ActionGenerate = "generate"
	ActionAccept   = "accept"
	ActionReset    = "reset"
	ActionClose    = "close"
	ActionComplete = "complete"
	ActionHealth   = "health"
)

var (
	ErrUnknownSession = errors.New("unknown session")
	ErrUnknownAction  = errors.New("unknown action")
	ErrBadRequest     = errors.New("bad request")
)

// Request is one client frame. Text is a pointer so that an empty draft can be
// told apart from a request that leaves the text alone.
type Request struct {
	ID      string  `msgpack:"id"`
	Action  string  `msgpack:"a"`
	Session string  `msgpack:"sid,omitempty"`
	Text    *string `msgpack:"t,omitempty"`
	Word    string  `msgpack:"w,omitempty"`
	Prefix  string  `msgpack:"p,omitempty"`
	Limit   int     `msgpack:"l,omitempty"`
}

// SuggestionResponse answers open, generate, accept and reset.
type SuggestionResponse struct {
	ID         string   `msgpack:"id"`
	Session    string   `msgpack:"sid"`
	Text       string   `msgpack:"t"`
	Current    []string `msgpack:"s"`
	Previous   []string `msgpack:"ps"`
	Generation uint64   `msgpack:"g"`
	TimeTaken  int64    `msgpack:"tm"`
}

// CompletionResponse answers complete.
type CompletionResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"c"`
	TimeTaken   int64    `msgpack:"tm"`
}

// StatusResponse answers close and health, and is the readiness frame.
type StatusResponse struct {
	ID       string `msgpack:"id,omitempty"`
	Status   string `msgpack:"status"`
	Sessions int    `msgpack:"n,omitempty"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
