// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main is the hearme binary: a word suggestion engine for reflective writing.

Note: This is a BETA release. APIs and functionality may rapidly change.

As the writer drafts a message, hearme suggests next words from a curated
vocabulary of emotions, needs and coping skills. Suggestions follow the last
word typed, the themes the draft touches on, and a sprinkle of growth words.
Words already offered move to a second pool so nothing repeats too soon.

# Usage

Start the msgpack IPC server on stdin/stdout (the default):

	hearme
	hearme serve -d

Write in the terminal, walk the reflection questions and get the message to send:

	hearme write --starter feel

Debug suggestions line by line:

	hearme cli

Inspect the vocabulary and config:

	hearme vocab
	hearme vocab needs
	hearme vocab complete grat
	hearme config path
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/hearme/internal/logger"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0-beta"
	AppName = "hearme"
	gh      = "https://github.com/bastiangx/hearme"
)

type rootFlags struct {
	config string
	debug  bool
	seed   uint64
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func newRoot() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           AppName,
		Short:         "Word suggestions for reflective writing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(flags.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config.toml (default: $HEARME_CONFIG or the user config dir)")
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Toggle debug mode")
	root.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Random seed for suggestions (0 picks one)")

	root.AddCommand(
		serveCmd(flags),
		writeCmd(flags),
		cliCmd(flags),
		vocabCmd(flags),
		configCmd(flags),
		versionCmd(),
	)
	return root
}

// main only wires commands; each mode lives in its own run function.
func main() {
	if err := newRoot().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
