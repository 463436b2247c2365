package main

import (
	"errors"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sadopc/pomo/internal/config"
	"github.com/sadopc/pomo/internal/logging"
	"github.com/sadopc/pomo/internal/store"
	"github.com/sadopc/pomo/internal/tui"
)

var errColor = color.New(color.FgRed, color.Bold)

func fail(format string, args ...any) {
	errColor.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// A missing .env is fine; anything else is worth reporting.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fail("error: load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("error: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Path:  cfg.LogFile,
		Level: logging.ParseLevel(cfg.LogLevel, zapcore.InfoLevel),
	})
	if err != nil {
		fail("error: %v", err)
	}
	defer logger.Sync()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fail("error opening database: %v", err)
	}
	defer s.Close()

	runID := uuid.NewString()
	logger.Info("starting",
		zap.String("run_id", runID),
		zap.String("db", cfg.DBPath),
		zap.Bool("auto_start", cfg.AutoStart),
	)

	app := tui.NewApp(s, tui.Options{
		Logger:    logger.With(zap.String("run_id", runID)),
		RunID:     runID,
		AutoStart: cfg.AutoStart,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		s.Close()
		logger.Sync()
		fail("error: %v", err)
	}
	logger.Info("exiting", zap.String("run_id", runID))
}
