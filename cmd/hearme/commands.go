package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/hearme/internal/cli"
	"github.com/bastiangx/hearme/internal/logger"
	"github.com/bastiangx/hearme/internal/tui"
	"github.com/bastiangx/hearme/pkg/config"
	"github.com/bastiangx/hearme/pkg/message"
	"github.com/bastiangx/hearme/pkg/server"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func serveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve writing sessions over msgpack on stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
}

func runServe(ctx context.Context, flags *rootFlags) error {
	sigHandler()
	cfg, path, err := config.LoadConfigWithPriority(flags.config)
	if err != nil {
		return err
	}
	backend, err := loadBackend(cfg, flags.seed)
	if err != nil {
		return err
	}

	srv := server.NewServer(backend, server.Options{
		InitialText: cfg.Session.InitialText,
		Reload: func() (server.Backend, error) {
			next, err := config.LoadConfig(path)
			if err != nil {
				return server.Backend{}, err
			}
			if err := next.Validate(); err != nil {
				return server.Backend{}, err
			}
			return loadBackend(next, flags.seed)
		},
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if path != "" {
		go func() {
			if err := srv.Watch(ctx, path, cfg.Vocab.Path); err != nil {
				log.Warnf("Config hot reload disabled: %v", err)
			}
		}()
	}

	showStartupInfo(path, backend.Vocab.Size())
	return srv.Start(ctx)
}

func loadBackend(cfg *config.Config, seed uint64) (server.Backend, error) {
	gen, err := cfg.NewGenerator(seed)
	if err != nil {
		return server.Backend{}, err
	}
	return server.NewBackend(gen, cfg.Limits()), nil
}

func writeCmd(flags *rootFlags) *cobra.Command {
	var starter, logFile string
	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write with live suggestions, then build the message to send",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadConfigWithPriority(flags.config)
			if err != nil {
				return err
			}
			initial := cfg.Session.InitialText
			if starter != "" {
				if !message.IsStarter(starter) {
					return errors.WithHintf(errors.Newf("unknown starter %q", starter),
						"Pick one of: %s", strings.Join(message.Starters, ", "))
				}
				initial = message.StarterText(starter)
			}

			engine, err := cfg.NewEngine(flags.seed)
			if err != nil {
				return err
			}

			// the screen owns the terminal, logs go to a file or nowhere
			closer, err := logger.ToFile(logFile)
			if err != nil {
				return errors.Wrap(err, "opening log file")
			}
			defer closer.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			final, err := tui.Run(ctx, tui.Options{
				Session:         suggest.NewSession(engine, initial),
				MinWords:        cfg.Session.MinWords,
				MaxWords:        cfg.Session.MaxWords,
				AnswerMaxChars:  cfg.Session.AnswerMaxChars,
				MessageMaxWords: cfg.Session.MessageMaxWords,
				SettleDelay:     cfg.Timing.SettleDelay(),
				GenerationDelay: cfg.Timing.GenerationDelay(),
			})
			if err != nil {
				return err
			}
			if final != "" {
				fmt.Println(final)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&starter, "starter", "", "Open the draft with \"I <starter>\", e.g. feel, need, hope")
	cmd.Flags().StringVar(&logFile, "log", "", "Write logs to this file while the screen is open")
	return cmd
}

func cliCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cli",
		Short: "Line based session for testing and debugging suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sigHandler()
			cfg, _, err := config.LoadConfigWithPriority(flags.config)
			if err != nil {
				return err
			}
			gen, err := cfg.NewGenerator(flags.seed)
			if err != nil {
				return err
			}
			log.SetReportTimestamp(false)
			session := suggest.NewSession(suggest.NewEngine(gen, cfg.Limits()), cfg.Session.InitialText)
			h := cli.NewInputHandler(session, gen.Store(), cfg.Session.MinWords, cfg.Session.MaxWords)
			return h.Start(cmd.Context())
		},
	}
}

func vocabCmd(flags *rootFlags) *cobra.Command {
	load := func() (*vocab.Store, error) {
		cfg, _, err := config.LoadConfigWithPriority(flags.config)
		if err != nil {
			return nil, err
		}
		return vocab.LoadFile(cfg.Vocab.Path)
	}

	cmd := &cobra.Command{
		Use:   "vocab [category]",
		Short: "List vocabulary categories, or the words of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, c := range store.Names() {
					fmt.Fprintf(out, "%-14s %d\n", c, store.Len(c))
				}
				fmt.Fprintf(out, "%-14s %d\n", "total", store.Size())
				return nil
			}
			c, err := vocab.ParseCategory(args[0])
			if err != nil {
				return err
			}
			for _, w := range store.Category(c) {
				fmt.Fprintln(out, w)
			}
			return nil
		},
	}

	var limit int
	complete := &cobra.Command{
		Use:   "complete <prefix>",
		Short: "Complete a prefix against the vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := load()
			if err != nil {
				return err
			}
			words := store.Complete(args[0], limit)
			if len(words) == 0 {
				log.Warnf("No words found for prefix: '%s'", args[0])
				return nil
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
	complete.Flags().IntVarP(&limit, "limit", "l", 10, "Number of words to return")
	cmd.AddCommand(complete)
	return cmd
}

func configCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or rebuild config.toml",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file in use",
			RunE: func(cmd *cobra.Command, args []string) error {
				_, path, err := config.LoadConfigWithPriority(flags.config)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), config.GetActiveConfigPath(path))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rebuild",
			Short: "Overwrite the default config.toml with defaults",
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.RebuildConfigFile()
				if err != nil {
					return errors.Wrap(err, "rebuilding config")
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current version",
		Run: func(cmd *cobra.Command, args []string) {
			l := logger.Default("")
			l.SetLevel(log.InfoLevel)

			styles := log.DefaultStyles()
			styles.Values["version"] = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
				Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
			styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
			l.SetStyles(styles)

			l.Print("")
			l.Print("[ hearme ] Words for what is hard to say")
			l.Print("", "version", Version)
			l.Print("")
			l.Print("use -h or --help to see available options")
			l.Print("Github Repo", "gh", gh)
		},
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(configPath string, words int) {
	l := logger.New(AppName)
	l.SetLevel(log.InfoLevel)
	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	l.Infof("vocabulary: %d words", words)
	l.Info("status: ready")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")
}
