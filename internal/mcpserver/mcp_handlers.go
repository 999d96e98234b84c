package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/infality/benchplot/core"
	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// applyRequestOverrides copies the base config and applies the per-request
// directory, suffix and limit arguments on top of it.
func (h *toolHandler) applyRequestOverrides(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("dir", ""); d != "" {
		cfg.BenchDir = d
	}
	if s := request.GetString("suffix", ""); s != "" {
		cfg.Suffix = s
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}
	return cfg
}

func (h *toolHandler) handleGetBenchmarkStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyRequestOverrides(request)

	_, series, err := core.LoadSeries(cfg.BenchDir, cfg.Suffix)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	summaries, err := core.Summarize(series)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	enriched := schema.EnrichSummaries(summaries)
	if cfg.ResultLimit > 0 && len(enriched) > cfg.ResultLimit {
		enriched = enriched[:cfg.ResultLimit]
	}
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListBenchmarkFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.applyRequestOverrides(request)

	files, series, err := core.LoadSeries(cfg.BenchDir, cfg.Suffix)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}

	counts := make([]int, len(series))
	for i, s := range series {
		counts[i] = s.Len()
	}

	enriched := schema.EnrichBenchFiles(files, counts)
	if cfg.ResultLimit > 0 && len(enriched) > cfg.ResultLimit {
		enriched = enriched[:cfg.ResultLimit]
	}
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
