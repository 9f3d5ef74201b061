package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/akwright/studybuddy/internal/cli"
	"github.com/akwright/studybuddy/internal/config"
	"github.com/akwright/studybuddy/internal/csvstore"
	"github.com/akwright/studybuddy/internal/domain/session"
	"github.com/akwright/studybuddy/internal/domain/student"
	"github.com/akwright/studybuddy/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr: in mcp mode stdout carries JSON-RPC, in cli mode
	// it carries command output.
	logWriter := io.Writer(os.Stderr)
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store := csvstore.New(cfg.Data.Dir)
	if err := store.Load(); err != nil {
		// Proceed with whatever loaded; the data files may be absent or
		// damaged, and every successful command rewrites them.
		logger.Warn("could not load data files", "dir", cfg.Data.Dir, "error", err)
	}

	studentRepo := csvstore.NewStudentRepository(store)
	sessionRepo := csvstore.NewSessionRepository(store)

	studentSvc := student.NewService(studentRepo, logger)
	sessionSvc := session.NewService(studentRepo, sessionRepo, logger)

	switch cfg.Mode {
	case "mcp":
		server := mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Students: studentSvc,
				Sessions: sessionSvc,
				Store:    store,
			},
			ExportDir: cfg.Export.Dir,
			Logger:    logger,
		})
		runStdioMode(logger, server)
	default:
		runner := cli.New(studentSvc, sessionSvc, store, cfg.Export.Dir, logger, os.Stdin, os.Stdout)
		if err := runner.Run(context.Background()); err != nil {
			logger.Error("command loop error", "error", err)
			os.Exit(1)
		}
	}
}

func runStdioMode(logger *slog.Logger, server *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := server.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
