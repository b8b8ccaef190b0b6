package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"webex-mcp/internal/config"
	"webex-mcp/internal/mcpserver"
	"webex-mcp/internal/tools"
	"webex-mcp/internal/webex"
)

const (
	serverName = "webex-mcp-server"
	version    = "0.1.0"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file (JSON)")
	showVersion = flag.Bool("version", false, "Show version information")
	httpAddr    = flag.String("http", "", "Serve MCP over HTTP on this address instead of stdio")
	debug       = flag.Bool("debug", false, "Enable debug logging")
	logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", serverName, version)
		os.Exit(0)
	}

	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	log.Info().
		Str("version", version).
		Str("apiBaseUrl", cfg.APIBaseURL).
		Bool("debug", cfg.Debug).
		Msg("Starting Webex MCP Server")

	if !cfg.HasCredentials() {
		// Not fatal: the client handle is lazy, so the missing credential
		// surfaces as a tool failure on first invocation.
		log.Warn().Msg("No Webex credentials configured - tool calls will fail until WEBEX_ACCESS_TOKEN is set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}

	log.Info().Msg("Webex MCP Server stopped gracefully")
}

// loadConfig loads the configuration from file and environment, then applies
// CLI flag overrides before validating.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnvironment()
	}
	if err != nil {
		return nil, err
	}

	if *httpAddr != "" {
		cfg.HTTPAddr = *httpAddr
	}
	if *debug {
		cfg.Debug = true
		if *logLevel == "info" {
			cfg.LogLevel = "debug"
		}
	}
	if *logLevel != "info" {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// setupLogging configures the global logger. Logs always go to stderr:
// stdout carries the MCP stream in stdio mode.
func setupLogging(cfg *config.Config) {
	zerolog.SetGlobalLevel(parseLogLevel(cfg.LogLevel))

	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Caller().Logger()
	} else {
		log.Logger = zerolog.New(os.Stderr).
			With().
			Timestamp().
			Logger()
	}
}

// parseLogLevel converts a string log level to zerolog.Level.
func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// run wires the registry, lazy client handle, and transport together.
func run(ctx context.Context, cfg *config.Config) error {
	registry := tools.NewRegistry()
	tools.RegisterAllTools(registry)

	creds := cfg.Credentials()
	toolCtx := tools.NewToolContext(&log.Logger, func() (*webex.Client, error) {
		return webex.NewClientFromCredentials(ctx, creds)
	})

	server := mcpserver.New(serverName, version, registry, toolCtx)

	if cfg.HTTPAddr != "" {
		return server.ServeHTTP(ctx, cfg.HTTPAddr)
	}

	log.Info().Msg("serving MCP over stdio")
	return server.Serve(ctx, os.Stdin, os.Stdout)
}
