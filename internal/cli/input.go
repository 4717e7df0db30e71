// Package cli is a line based writing session for debugging suggestions in real time.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/hearme/pkg/message"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

const completeLimit = 10

// InputHandler reads lines and feeds them to a session.
//
//	+word     accept word
//	?prefix   look prefix up in the vocabulary
//	!reset    start over
//	!text     print the draft
//	anything else is appended to the draft
type InputHandler struct {
	session  *suggest.Session
	store    *vocab.Store
	minWords int
	maxWords int
	in       io.Reader
	out      *log.Logger
}

// NewInputHandler handles a session on stdin, printing to stderr.
func NewInputHandler(session *suggest.Session, store *vocab.Store, minWords, maxWords int) *InputHandler {
	return &InputHandler{
		session:  session,
		store:    store,
		minWords: minWords,
		maxWords: maxWords,
		in:       os.Stdin,
		out:      log.NewWithOptions(os.Stderr, log.Options{}),
	}
}

// SetIO swaps the input and output streams.
func (h *InputHandler) SetIO(in io.Reader, out io.Writer) {
	h.in = in
	h.out = log.NewWithOptions(out, log.Options{})
}

// Start runs the loop until the input ends.
func (h *InputHandler) Start(ctx context.Context) error {
	h.out.Print("hearme CLI [BETA]")
	h.out.Print("write a line and press Enter, +word accepts a suggestion (Ctrl+C to exit):")
	h.out.Printf("> %s", h.session.Text())

	scanner := bufio.NewScanner(h.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(ctx, line)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}

func (h *InputHandler) handleInput(ctx context.Context, line string) {
	start := time.Now()
	var snap suggest.Snapshot

	switch {
	case line == "!reset":
		h.session.Reset()
		snap = h.session.Snapshot()
	case line == "!text":
		h.out.Printf("> %s", h.session.Text())
		return
	case strings.HasPrefix(line, "?"):
		h.complete(strings.TrimPrefix(line, "?"))
		return
	case strings.HasPrefix(line, "+"):
		word := strings.TrimSpace(strings.TrimPrefix(line, "+"))
		if word == "" {
			h.out.Error("Nothing to accept")
			return
		}
		snap = h.session.Apply(ctx, word)
	default:
		h.session.SetText(suggest.AppendWord(h.session.Text(), line))
		snap = h.session.Generate(ctx)
	}

	log.Debugf("Took [ %v ] for cycle %d", time.Since(start), snap.Gen)
	h.printSnapshot(snap)
}

func (h *InputHandler) complete(prefix string) {
	words := h.store.Complete(prefix, completeLimit)
	if len(words) == 0 {
		h.out.Warnf("No words found for prefix: '%s'", prefix)
		return
	}
	h.out.Printf("Found %d words for prefix '%s':", len(words), prefix)
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, colorWord(w))
	}
}

func (h *InputHandler) printSnapshot(snap suggest.Snapshot) {
	h.out.Printf("> %s", snap.Text)
	h.out.Print(message.Check(snap.Text, h.minWords, h.maxWords).Status())

	if len(snap.Current) == 0 {
		h.out.Warn("No suggestions for this text")
	} else {
		colored := make([]string, len(snap.Current))
		for i, w := range snap.Current {
			colored[i] = colorWord(w)
		}
		h.out.Printf("%d suggestions: %s", len(snap.Current), strings.Join(colored, " "))
	}
	if len(snap.Previous) > 0 {
		h.out.Printf("%d earlier: %s", len(snap.Previous), strings.Join(head(snap.Previous, 12), " "))
	}
}

func colorWord(w string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
}

func head(words []string, n int) []string {
	if len(words) > n {
		return words[:n]
	}
	return words
}
