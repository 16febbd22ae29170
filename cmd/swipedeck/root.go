package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/phanxgames/swipedeck"
)

// configEnv names the deck file used when --config is not given. It may be
// set in a .env file next to the binary.
const configEnv = "SWIPEDECK_CONFIG"

type options struct {
	configPath string
	scriptPath string
	verbose    bool
	debug      bool
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "swipedeck",
		Short: "Swipe through a deck of cards",
		Long: `swipedeck opens a window showing a deck of cards described in a TOML file.
Swipe right to like a card, left to pass. When the deck runs out the
session summary is printed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; anything else is worth reporting.
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load .env: %w", err)
			}
			if opts.configPath == "" {
				opts.configPath = os.Getenv(configEnv)
			}
			for _, p := range []*string{&opts.configPath, &opts.scriptPath} {
				if *p == "" {
					continue
				}
				expanded, err := homedir.Expand(*p)
				if err != nil {
					return fmt.Errorf("expand path %s: %w", *p, err)
				}
				*p = expanded
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			return run(cmd, opts, logger)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "deck file (defaults to $"+configEnv+", then a built-in deck)")
	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "JSON gesture script to replay; the window closes when it finishes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log per-frame scene stats")
	return cmd
}

// newLogger creates a logger with short timestamps, filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "swipedeck",
	})
}

func run(cmd *cobra.Command, opts options, logger *log.Logger) error {
	cfg := defaultDeckFile()
	if opts.configPath != "" {
		var err error
		if cfg, err = loadDeckFile(opts.configPath); err != nil {
			return err
		}
		logger.Info("loaded deck", "path", opts.configPath, "cards", len(cfg.Cards))
	}

	cards, err := cfg.cards()
	if err != nil {
		return err
	}

	var sess session
	stack := swipedeck.NewCardStack(swipedeck.Config[card]{
		Data:              cards,
		Width:             float64(cfg.Window.Width),
		CardHeight:        cfg.Window.CardHeight,
		RenderCard:        renderCard(cfg.Window),
		RenderNoMoreCards: renderNoMoreCards(cfg.Window),
		OnSwipeRight:      sess.like,
		OnSwipeLeft:       sess.pass,
		Logger:            logger,
	})

	scene := swipedeck.NewScene()
	scene.SetLogger(logger)
	scene.SetDebugMode(opts.debug)
	if cfg.Window.DragDeadZone > 0 {
		scene.SetDragDeadZone(cfg.Window.DragDeadZone)
	}
	scene.ClearColor = swipedeck.Color{R: 0.11, G: 0.11, B: 0.14, A: 1}

	deck := stack.Node()
	deck.SetPosition(0, cfg.Window.TopMargin)
	scene.Root().AddChild(deck)

	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := swipedeck.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}

	err = swipedeck.Run(scene, swipedeck.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: true,
		OnLayout: func(w, _ int) {
			stack.SetWidth(float64(w))
		},
	})
	if err != nil {
		return err
	}

	sess.print(cmd.OutOrStdout())
	return nil
}

// session records swipe outcomes for the exit summary.
type session struct {
	liked  []card
	passed []card
}

func (s *session) like(c card) { s.liked = append(s.liked, c) }

func (s *session) pass(c card) { s.passed = append(s.passed, c) }

func (s *session) print(w io.Writer) {
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed)
	if !isTerminalWriter(w) {
		green.DisableColor()
		red.DisableColor()
	}
	_, _ = fmt.Fprintf(w, "%s %d   %s %d\n",
		green.Sprint("liked"), len(s.liked), red.Sprint("passed"), len(s.passed))
	for _, c := range s.liked {
		_, _ = green.Fprintf(w, "  + %s\n", c.Title)
	}
	for _, c := range s.passed {
		_, _ = red.Fprintf(w, "  - %s\n", c.Title)
	}
}
