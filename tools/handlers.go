package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/howToCodeWell/ghost-content-api/ghost"
	"github.com/howToCodeWell/ghost-content-api/metrics"
	"github.com/howToCodeWell/ghost-content-api/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *ghost.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *ghost.Client, logger *slog.Logger) *HandlerRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			registered++
		}
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	method := h.handlerFor(spec.Method)
	if method == nil {
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return h.register(server, h.buildTool(spec), spec, method)
}

// handlerFor returns the client MCP method bound to a spec method name, or nil.
func (h *HandlerRegistry) handlerFor(method string) any {
	switch method {
	case "ListPosts":
		return h.client.ListPostsMCP
	case "GetPost":
		return h.client.GetPostMCP
	case "ListPages":
		return h.client.ListPagesMCP
	case "GetPage":
		return h.client.GetPageMCP
	case "ListTags":
		return h.client.ListTagsMCP
	case "GetTag":
		return h.client.GetTagMCP
	case "ListAuthors":
		return h.client.ListAuthorsMCP
	case "GetAuthor":
		return h.client.GetAuthorMCP
	case "GetSettings":
		return h.client.GetSettingsMCP
	}
	return nil
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, wrap(h, spec, method))
}

// wrap builds the typed MCP handler around a client method.
func wrap[Args, Result any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) mcp.ToolHandlerFor[Args, Result] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (_ *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		tracing.AddToolAttributes(span, spec.Name, spec.Category)
		span.SetAttributes(
			attribute.String("ghost.resource", spec.Resource),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	}
}

// recoverPanic recovers from panics in tool handlers and reports them as tool errors.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "resource", spec.Resource}

	switch a := args.(type) {
	case ghost.ListContentArgs:
		attrs = append(attrs, "filter", a.Filter, "limit", a.Limit, "page", a.Page)
	case ghost.ListArgs:
		attrs = append(attrs, "filter", a.Filter, "limit", a.Limit, "page", a.Page)
	case ghost.GetArgs:
		if a.ID != "" {
			attrs = append(attrs, "id", a.ID)
		} else {
			attrs = append(attrs, "slug", a.Slug)
		}
	case ghost.SettingsArgs:
		// No args to log
	}

	switch r := result.(type) {
	case ghost.ListResult:
		attrs = append(attrs, "results_count", len(r.Items))
		if r.Pagination != nil {
			attrs = append(attrs, "total_results", r.Pagination.Total)
		}
	case ghost.SettingsResult:
		attrs = append(attrs, "settings", len(r.Settings))
	}

	h.logger.Info("Tool executed", attrs...)
}

// register type-switches the bound method onto the generic register.
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) bool {
	switch m := method.(type) {
	case func(context.Context, ghost.ListContentArgs) (ghost.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, ghost.ListArgs) (ghost.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, ghost.GetArgs) (ghost.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, ghost.SettingsArgs) (ghost.SettingsResult, error):
		register(h, server, tool, spec, m)
	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
		return false
	}
	return true
}
