package schema

import "fmt"

// ParseError reports a benchmark file line that could not be parsed as a
// float64 sample. Line numbers are 1-based. The whole run aborts on the
// first ParseError; nothing is rendered.
type ParseError struct {
	Path string // File that contains the bad line
	Line int    // 1-based line number
	Text string // Offending line content after whitespace stripping
	Err  error  // Underlying strconv error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse %q as float: %v", e.Path, e.Line, e.Text, e.Err)
}

// Unwrap exposes the underlying strconv error for errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptySeriesError reports a benchmark file that produced zero samples.
// Distribution geometry needs at least one value per series, so such a
// file aborts the run with the path attached.
type EmptySeriesError struct {
	Path string
}

// Error implements the error interface.
func (e *EmptySeriesError) Error() string {
	return fmt.Sprintf("%s: file contains no samples", e.Path)
}
