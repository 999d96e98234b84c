// Package main provides a performance benchmarking tool for the benchplot CLI.
// It measures execution times across benchmark directories of different sizes
// and command types, running each test multiple times, treating the first
// tracked run as cold and averaging the rest as warm, generating CSV output
// for performance analysis and documentation.
//
// Prerequisites:
// - benchplot binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated benchmark fixtures and artifacts
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-tracking average, cold run and average of warm runs).
type BenchmarkResult struct {
	Scenario    string
	Command     string
	NoTrackTime string
	ColdTime    string
	WarmTime    string
}

// Scenario describes one generated benchmark directory.
type Scenario struct {
	Name    string
	Files   int
	Samples int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoTrackRuns int
	TrackedRuns int
	Scenarios   []Scenario
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     5 * time.Minute,
		NoTrackRuns: 3,
		TrackedRuns: 4,
		Scenarios: []Scenario{
			{Name: "small", Files: 5, Samples: 1_000},
			{Name: "medium", Files: 20, Samples: 10_000},
			{Name: "large", Files: 50, Samples: 100_000},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	if err := generateFixtures(config); err != nil {
		fmt.Printf("Fixture generation failed: %v\n", err)
		os.Exit(1)
	}

	// Start every tracked phase from an empty history database
	fmt.Printf("Clearing run history...\n")
	clearCmd := exec.Command("benchplot", "history", "clear", "--history-db-connect", historyPath(config))
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear run history: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Run history cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// historyPath returns the SQLite database used for the tracked phases.
func historyPath(config BenchmarkConfig) string {
	return filepath.Join(config.WorkDir, "bench_history.db")
}

// checkPrerequisites verifies that the benchplot binary exists
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("benchplot"); err != nil {
		return fmt.Errorf("benchplot binary not found in PATH")
	}

	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return fmt.Errorf("cannot create work dir %s: %w", config.WorkDir, err)
	}

	return nil
}

// generateFixtures writes one benchmark directory per scenario. Directories
// that already contain the expected number of files are reused so repeated
// harness runs skip the expensive generation step.
func generateFixtures(config BenchmarkConfig) error {
	rng := rand.New(rand.NewSource(42))

	for _, sc := range config.Scenarios {
		dir := filepath.Join(config.WorkDir, sc.Name)
		if entries, err := os.ReadDir(dir); err == nil && len(entries) == sc.Files {
			fmt.Printf("Reusing fixtures for %s (%d files)\n", sc.Name, sc.Files)
			continue
		}

		fmt.Printf("Generating fixtures for %s (%d files x %d samples)\n", sc.Name, sc.Files, sc.Samples)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		for i := range sc.Files {
			var b strings.Builder
			b.Grow(sc.Samples * 8)
			// Later files trend faster so speedup labels span their full range
			base := 100.0 / float64(i+1)
			for range sc.Samples {
				fmt.Fprintf(&b, "%.4f\n", base+rng.NormFloat64()*base/10)
			}
			name := filepath.Join(dir, fmt.Sprintf("run%03d.txt", i+1))
			if err := os.WriteFile(name, []byte(b.String()), 0o644); err != nil {
				return err
			}
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured scenarios
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d scenarios, %v timeout, no-tracking: %d runs, tracked: %d runs\n",
		len(config.Scenarios), config.Timeout, config.NoTrackRuns, config.TrackedRuns)

	for _, sc := range config.Scenarios {
		fmt.Printf("Benchmarking %s\n", sc.Name)

		benchDir := filepath.Join(config.WorkDir, sc.Name)
		chartFile := filepath.Join(config.WorkDir, fmt.Sprintf("bench_%s.png", sc.Name))

		// Chart rendering
		result := runBenchmarkSuite(config, sc.Name, benchDir, "chart", "chart rendering", "--out "+chartFile)
		results = append(results, result)

		// Stats summary
		result = runBenchmarkSuite(config, sc.Name, benchDir, "stats", "stats summary", "")
		results = append(results, result)

		// File listing
		result = runBenchmarkSuite(config, sc.Name, benchDir, "list", "file listing", "")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-tracking and tracked benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, scenario, benchDir, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, scenario)

	// Helper to run a benchmark phase
	runPhase := func(historyBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, benchDir, command, extraArgs, historyBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-tracking runs
	_, noTrackAvg := runPhase("none", config.NoTrackRuns, "No-tracking")

	// Phase 2: Tracked runs
	coldTime, warmAvg := runPhase("sqlite", config.TrackedRuns, "Tracked")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-tracking average: %s, Cold time: %s, Warm average: %s\n", noTrackAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Scenario:    scenario,
		Command:     command,
		NoTrackTime: noTrackAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a benchplot command multiple times with the specified history backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, benchDir, command, extraArgs, historyBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, benchDir, "--history-backend", historyBackend}
	if historyBackend == "sqlite" {
		args = append(args, "--history-db-connect", historyPath(config))
	}
	if extraArgs != "" {
		args = append(args, strings.Fields(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("benchplot", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	var completionPhrase string
	switch command {
	case "chart":
		completionPhrase = "Saved chart to"
	case "stats":
		completionPhrase = "Summarized"
	default:
		completionPhrase = "Listed"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/benchplot_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"scenario", "cmd", "no_track_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Scenario, result.Command, result.NoTrackTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "chart", "Chart Rendering:")
	printCommandSummary(results, "stats", "Stats Summary:")
	printCommandSummary(results, "list", "File Listing:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-tracking: %s, Cold: %s, Warm: %s\n", result.Scenario, result.NoTrackTime, result.ColdTime, result.WarmTime)
		}
	}
}
