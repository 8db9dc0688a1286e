// Ghost Content MCP Server - A Model Context Protocol server for Ghost sites
// Provides read-only tools for posts, pages, tags, authors and site settings
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/howToCodeWell/ghost-content-api/ghost"
	"github.com/howToCodeWell/ghost-content-api/tools"
	"github.com/howToCodeWell/ghost-content-api/tracing"
)

// recoverPanic logs a panic instead of crashing
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "ghost-content-mcp-server"
	ServerVersion = "1.0.0"
)

const instructions = `Ghost Content MCP Server provides read-only access to a Ghost site's Content API.

Available tools:
- ghost_list_posts / ghost_get_post: Published posts
- ghost_list_pages / ghost_get_page: Static pages
- ghost_list_tags / ghost_get_tag: Tags
- ghost_list_authors / ghost_get_author: Authors
- ghost_get_settings: Site title, navigation and other public settings

Get tools take either an id or a slug. List tools accept Ghost NQL filters.

Configure via environment variables:
- GHOST_URL: Site URL (e.g., https://demo.ghost.io)
- GHOST_CONTENT_API_KEY: Content API key
- GHOST_API_VERSION: API version (default v2)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	config, err := ghost.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(config, logger); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run(config *ghost.Config, logger *slog.Logger) error {
	if !config.HasToken() {
		logger.Warn("GHOST_CONTENT_API_KEY is not set, tool calls will fail until it is configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	if addr := os.Getenv("GHOST_MCP_METRICS_ADDR"); addr != "" {
		metricsServer := newMetricsServer(addr)
		go serveMetrics(metricsServer, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	client := ghost.NewFromConfig(config, logger)
	server := newServer(client, logger)

	logger.Info("Starting Ghost Content MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"site_url", config.Host,
		"api_version", config.APIVersion,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newServer creates the MCP server with every tool registered
func newServer(client *ghost.Client, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: instructions,
	})

	tools.NewHandlerRegistry(client, logger).RegisterAll(server)
	return server
}

// newMetricsServer exposes the Prometheus registry on /metrics
func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func serveMetrics(srv *http.Server, logger *slog.Logger) {
	defer recoverPanic(logger, "metrics_server")
	logger.Info("Serving metrics", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Metrics server failed", "error", err)
	}
}
