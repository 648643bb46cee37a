package domain

import "strings"

// Sentinel locations used when Boost.Test gives us no usable source position.
const (
	NoSourceFile    = "<no source file>"
	UnknownLocation = "unknown location"
)

// FailureRecord is the normalized unit of failure output: where it happened
// and what the framework said about it. Line 0 means the line is unknown.
type FailureRecord struct {
	SourceFile   string   `json:"source_file"`
	LineNumber   int      `json:"line_number"`
	MessageLines []string `json:"message_lines"`
}

// NewFailureRecord builds a record from raw message contents, splitting them
// into lines the way a display layer expects them.
func NewFailureRecord(sourceFile string, line int, contents string) FailureRecord {
	return FailureRecord{
		SourceFile:   sourceFile,
		LineNumber:   line,
		MessageLines: splitMessage(contents),
	}
}

// Message joins the record's message lines back into a single string.
func (r FailureRecord) Message() string {
	return strings.Join(r.MessageLines, "\n")
}

func splitMessage(contents string) []string {
	if contents == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
}

// FailureDetail is the persisted form of a failure, enriched with the
// executable and test id it came from so the viewer can group and display it.
type FailureDetail struct {
	Executable string `json:"executable"`
	TestID     string `json:"test_id"`
	SourceFile string `json:"source_file"`
	Line       int    `json:"line"`
	Message    string `json:"message"`
	Resolved   bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
