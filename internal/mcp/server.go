package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/sumitsaluja27/n8n-Workflow/internal/config"
	"github.com/sumitsaluja27/n8n-Workflow/internal/logging"
	"github.com/sumitsaluja27/n8n-Workflow/internal/repository"
	"github.com/sumitsaluja27/n8n-Workflow/internal/services"
)

// Server exposes the workflow transform as MCP tools. Walker counters of every
// call are kept on the server's own meter provider for the stats tool.
type Server struct {
	mcpServer     *server.MCPServer
	cfg           *config.Config
	logger        *logging.Logger
	metricsReader *sdkmetric.ManualReader
	meterProvider *sdkmetric.MeterProvider
}

// NewServer creates a new Server whose tools default to the directory and
// locale of cfg.
func NewServer(cfg *config.Config, logger *logging.Logger, version string) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			"Translate Workflows",
			version,
			server.WithToolCapabilities(true),
		),
		cfg:           cfg,
		logger:        logger,
		metricsReader: sdkmetric.NewManualReader(),
	}
	s.meterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.metricsReader))

	s.registerTools()
	return s
}

// ServeStdio serves the tools on stdin/stdout until stdin is closed.
func (s *Server) ServeStdio() error {
	defer s.meterProvider.Shutdown(context.Background())
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"translate_workflows",
			mcp.WithDescription("Add missing description and translations fields to every workflow file in a directory"),
			mcp.WithString("dir", mcp.Description("Directory holding the workflow files")),
			mcp.WithString("locale", mcp.Description("Locale of synthesized translations")),
		),
		s.handleTranslateWorkflows,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"translate_workflow",
			mcp.WithDescription("Add missing description and translations fields to one workflow file"),
			mcp.WithString("file", mcp.Required(), mcp.Description("Name of the workflow file inside dir")),
			mcp.WithString("dir", mcp.Description("Directory holding the workflow file")),
			mcp.WithString("locale", mcp.Description("Locale of synthesized translations")),
		),
		s.handleTranslateWorkflow,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"translation_stats",
			mcp.WithDescription("Count directory walks and processed or failed workflow files since the server started"),
		),
		s.handleTranslationStats,
	)
}

// target resolves the dir and locale arguments against the configuration.
func (s *Server) target(request mcp.CallToolRequest) (*config.Config, error) {
	cfg := *s.cfg
	cfg.Workflows.Dir = request.GetString("dir", cfg.Workflows.Dir)
	cfg.Translations.Locale = request.GetString("locale", cfg.Translations.Locale)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Server) newTransformer(cfg *config.Config) (*repository.FileRecordStore, *services.Transformer) {
	store := repository.NewFileRecordStore(cfg.Workflows.Dir, cfg.Workflows.Suffix)
	return store, services.NewTransformer(store, cfg.Translations.Locale, s.logger)
}

func (s *Server) handleTranslateWorkflows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := s.target(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	store, transformer := s.newTransformer(cfg)
	walker := services.NewWalker(store, transformer, io.Discard, s.logger, services.WithMeterProvider(s.meterProvider))
	report, err := walker.Run(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to translate workflows: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(report)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleTranslateWorkflow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	file, err := request.RequireString("file")
	if err != nil || file == "" {
		return mcp.NewToolResultError("Missing required parameter: file"), nil
	}

	cfg, err := s.target(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	store, transformer := s.newTransformer(cfg)
	if !store.Matches(file) {
		return mcp.NewToolResultError(fmt.Sprintf("file must be a plain file name ending in %q, got %q", cfg.Workflows.Suffix, file)), nil
	}
	result := transformer.TransformFile(ctx, file)
	if !result.OK() {
		return mcp.NewToolResultError(fmt.Sprintf("Error processing %s: %v", file, result.Err)), nil
	}

	jsonBytes, _ := json.Marshal(result)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleTranslationStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := collectStats(ctx, s.metricsReader)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to collect stats: %v", err)), nil
	}

	jsonBytes, _ := json.Marshal(stats)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
