package mcpserver_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/infality/benchplot/internal/contract"
	"github.com/infality/benchplot/internal/mcpserver"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSampleFile drops a benchmark file with a fixed mtime so discovery
// order is deterministic.
func writeSampleFile(t *testing.T, dir, name, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestMCPServerTools(t *testing.T) {
	benchDir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeSampleFile(t, benchDir, "baseline.txt", "10\n12\n14\n", base)
	writeSampleFile(t, benchDir, "improved.txt", "5\n6\n", base.Add(time.Minute))

	baseCfg := &contract.Config{
		BenchDir:  ".",
		Suffix:    ".txt",
		Precision: 2,
	}
	s := mcpserver.NewMCPServer(baseCfg)
	ctx := context.Background()

	t.Run("get_benchmark_stats returns summaries", func(t *testing.T) {
		tool := s.GetTool("get_benchmark_stats")
		require.NotNil(t, tool, "Tool get_benchmark_stats should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_benchmark_stats",
				Arguments: map[string]any{"dir": benchDir},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result []map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result, 2)

		assert.Equal(t, float64(1), result[0]["position"])
		assert.Equal(t, "baseline", result[0]["label"])
		assert.Equal(t, 11.0, result[0]["median_ms"])
		assert.Equal(t, "2.20x", result[0]["vs_fastest"])
		assert.Equal(t, "improved", result[1]["label"])
		assert.Equal(t, "1.00x (fastest)", result[1]["vs_fastest"])
	})

	t.Run("get_benchmark_stats honors limit", func(t *testing.T) {
		tool := s.GetTool("get_benchmark_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_benchmark_stats",
				Arguments: map[string]any{"dir": benchDir, "limit": 1.0},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result []map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result, 1)
		assert.Equal(t, "baseline", result[0]["label"])
	})

	t.Run("list_benchmark_files returns files in plot order", func(t *testing.T) {
		tool := s.GetTool("list_benchmark_files")
		require.NotNil(t, tool, "Tool list_benchmark_files should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_benchmark_files",
				Arguments: map[string]any{"dir": benchDir},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		var result []map[string]any
		text := res.Content[0].(mcp.TextContent).Text
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		require.Len(t, result, 2)

		assert.Equal(t, float64(1), result[0]["position"])
		assert.Equal(t, "baseline", result[0]["label"])
		assert.Equal(t, "baseline.txt", result[0]["name"])
		assert.Equal(t, float64(3), result[0]["samples"])
		assert.Equal(t, "improved", result[1]["label"])
		assert.Equal(t, float64(2), result[1]["samples"])
	})

	t.Run("get_benchmark_stats empty dir", func(t *testing.T) {
		tool := s.GetTool("get_benchmark_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_benchmark_stats",
				Arguments: map[string]any{"dir": t.TempDir()},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)
		assert.JSONEq(t, "[]", res.Content[0].(mcp.TextContent).Text)
	})
}

func TestMCPServerHandlers_Errors(t *testing.T) {
	baseCfg := &contract.Config{
		BenchDir:  ".",
		Suffix:    ".txt",
		Precision: 2,
	}
	s := mcpserver.NewMCPServer(baseCfg)
	ctx := context.Background()

	t.Run("get_benchmark_stats missing directory", func(t *testing.T) {
		tool := s.GetTool("get_benchmark_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_benchmark_stats",
				Arguments: map[string]any{"dir": filepath.Join(t.TempDir(), "missing")},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "analysis failed")
	})

	t.Run("get_benchmark_stats malformed file", func(t *testing.T) {
		benchDir := t.TempDir()
		writeSampleFile(t, benchDir, "bad.txt", "1.0\noops\n", time.Now())

		tool := s.GetTool("get_benchmark_stats")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_benchmark_stats",
				Arguments: map[string]any{"dir": benchDir},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "cannot parse")
	})

	t.Run("list_benchmark_files missing directory", func(t *testing.T) {
		tool := s.GetTool("list_benchmark_files")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "list_benchmark_files",
				Arguments: map[string]any{"dir": filepath.Join(t.TempDir(), "missing")},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "listing failed")
	})
}
