package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/KyleBrandon/keyword-search/pkg/config"
	"github.com/KyleBrandon/keyword-search/pkg/keywordsearch"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the configuration from defaults, the optional YAML file,
// the environment and finally the command line flags.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("keyword-search-server", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	transport := fs.String("transport", "", "Transport to serve on (stdio, http)")
	httpAddr := fs.String("http-addr", "", "Listen address for the http transport")
	logLevel := fs.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	logFile := fs.String("log-file", "", "Log file path (optional, logs to stderr if not specified)")
	baseDir := fs.String("base-dir", "", "Directory relative paths are resolved against (defaults to the working directory)")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return cfg, err
		}
	}

	cfg.LoadEnv()

	if *transport != "" {
		cfg.Transport = *transport
	}
	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *baseDir != "" {
		cfg.BaseDir = *baseDir
	}

	return cfg, cfg.Validate()
}

// setupLogging installs a JSON slog handler writing to the log file, or to
// stderr when no file is configured. stdout is reserved for the stdio transport.
func setupLogging(cfg config.Config, stderr io.Writer) (func(), error) {
	out := stderr
	closer := func() {}

	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return closer, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
		closer = func() { file.Close() }
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})
	slog.SetDefault(slog.New(handler))

	return closer, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []server.ServerOption
	if cfg.Recover {
		opts = append(opts, server.WithRecovery())
	}

	ks := keywordsearch.NewSearchServer(ctx, cfg.BaseDir, opts...)

	slog.Info("Keyword Search MCP Server started successfully",
		"transport", cfg.Transport,
		"base_dir", cfg.BaseDir,
		"log_level", cfg.LogLevel)

	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, ks, cfg.HTTPAddr)
	default:
		return server.ServeStdio(ks.McpServer)
	}
}

func serveHTTP(ctx context.Context, ks *keywordsearch.SearchServer, addr string) error {
	httpServer := server.NewStreamableHTTPServer(ks.McpServer)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening", "addr", addr)
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("Shutting down")
		return httpServer.Shutdown(context.Background())
	}
}
