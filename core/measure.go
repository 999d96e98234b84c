package core

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/infality/benchplot/internal/contract"
)

// MeasureCommand runs the given command repeatedly and returns the wall time
// of each timed run in milliseconds. Warmup runs execute first and are
// discarded. A non-zero exit status on any run aborts the measurement, with
// the command's stderr included in the returned error.
func MeasureCommand(ctx context.Context, cfg *contract.Config, command []string) ([]float64, error) {
	if len(command) == 0 {
		return nil, fmt.Errorf("no command to measure")
	}

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := runOnce(ctx, cfg.Timeout, command); err != nil {
			return nil, fmt.Errorf("warmup run %d: %w", i+1, err)
		}
	}

	samples := make([]float64, 0, cfg.Runs)
	for i := 0; i < cfg.Runs; i++ {
		elapsed, err := runOnce(ctx, cfg.Timeout, command)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", i+1, err)
		}
		samples = append(samples, elapsed)
	}
	return samples, nil
}

// runOnce executes the command a single time and returns its wall time in
// milliseconds with microsecond resolution.
func runOnce(ctx context.Context, timeout time.Duration, command []string) (float64, error) {
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, command[0], command[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return 0, fmt.Errorf("command timed out after %v", timeout)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return 0, fmt.Errorf("command failed: %w: %s", err, detail)
		}
		return 0, fmt.Errorf("command failed: %w", err)
	}

	return float64(elapsed.Microseconds()) / 1000.0, nil
}

// WriteSamples writes one sample per line to path, overwriting any previous
// content. Values keep their full precision so they read back unchanged.
func WriteSamples(path string, samples []float64) error {
	lines := make([]string, len(samples))
	for i, v := range samples {
		lines[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("cannot write sample file: %w", err)
	}
	return nil
}
