package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yungbote/roster/internal/observability"
	"github.com/yungbote/roster/internal/platform/envutil"
	"github.com/yungbote/roster/internal/platform/logger"
)

// DataFile is the working-directory relative file the roster is appended to.
const DataFile = "people_data.txt"

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Console  logger.Sink
	Out      io.Writer
	DataPath string
	shutdown func(context.Context) error
}

// New builds an App whose console lines go to out (stdout when nil).
func New(out io.Writer) (*App, error) {
	if out == nil {
		out = os.Stdout
	}
	logMode := envutil.String("LOG_MODE", "development", nil)
	logLevel := envutil.String("LOG_LEVEL", "info", nil)
	log, err := logger.NewWithLevel(logMode, logLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Debug("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}

	shutdown := observability.InitOTel(context.Background(), log, cfg.Otel)

	return &App{
		Log:      log,
		Cfg:      cfg,
		Console:  logger.NewConsole(out),
		Out:      out,
		DataPath: DataFile,
		shutdown: shutdown,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdown != nil {
		if err := a.shutdown(context.Background()); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		a.shutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
