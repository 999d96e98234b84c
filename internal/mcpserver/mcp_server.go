// Package mcpserver provides the Model Context Protocol (MCP) server implementation.
package mcpserver

import (
	"context"

	"github.com/infality/benchplot/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Benchplot MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Benchplot Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_benchmark_stats ---
	s.AddTool(mcp.NewTool("get_benchmark_stats",
		mcp.WithDescription("Summarize the benchmark sample files in a directory with per-file latency statistics."),
		mcp.WithString("dir", mcp.Description("Path to the benchmark directory (defaults to the configured directory).")),
		mcp.WithString("suffix", mcp.Description("File name suffix to match (defaults to '.txt').")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetBenchmarkStats)

	// --- 2. Tool: list_benchmark_files ---
	s.AddTool(mcp.NewTool("list_benchmark_files",
		mcp.WithDescription("List the benchmark sample files in a directory in plot order, oldest first."),
		mcp.WithString("dir", mcp.Description("Path to the benchmark directory (defaults to the configured directory).")),
		mcp.WithString("suffix", mcp.Description("File name suffix to match (defaults to '.txt').")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleListBenchmarkFiles)

	return s
}

// StartMCPServer starts the Benchplot MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
