package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/field"
	"github.com/vancomm/minesweeper-tui/internal/tui"
)

var (
	log = logrus.New()

	configPath string
	paramsFlag string
)

func init() {
	const (
		defaultConfigPath = ""
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.StringVar(&paramsFlag, "params", "", "pre-filled field params, width:height:mines")
}

// loadConfig merges the config file and the command line over the defaults.
func loadConfig() (*config.Config, *field.Params, error) {
	cfg := config.Default()
	if configPath != "" {
		if err := config.ReadConfig(configPath, cfg); err != nil {
			return nil, nil, fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}
	if paramsFlag != "" {
		cfg.Params = paramsFlag
	}
	if cfg.Params == "" {
		return cfg, nil, nil
	}
	p, err := field.ParseSeed(cfg.Params)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

// setupLogging sends every entry to a rotating file; the terminal is busy
// drawing the game.
func setupLogging(cfg *config.Config) error {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays(),
		Level:      logLevel,
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	log.SetOutput(io.Discard)

	field.Log = log
	tui.Log = log
	return nil
}

func sourceFor(cfg *config.Config) func() field.Source {
	if cfg.Seed == 0 {
		return nil
	}
	return func() field.Source {
		return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
}

func run(ctx context.Context, cfg *config.Config, defaults *field.Params) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	program := tea.NewProgram(
		tui.New(tui.Options{Defaults: defaults, Source: sourceFor(cfg)}),
		tea.WithAltScreen(),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		program.Quit()
		return nil
	})
	return g.Wait()
}

func main() {
	flag.Parse()

	cfg, defaults, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("minesweeper must be run in an interactive terminal")
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := run(mainCtx, cfg, defaults); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Errorf("exit reason: %s", err)
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	log.Info("bye")
}
