package boost

import (
	"encoding/xml"
	"fmt"
	"strings"

	"btp/internal/domain"
)

const fatalErrorCloseTag = "</FatalError>"

// logEntry is one diagnostic element of the Boost.Test XML log. The file and
// line attributes point at the assertion or throw site.
type logEntry struct {
	File string `xml:"file,attr"`
	Line int    `xml:"line,attr"`
	Text string `xml:",chardata"`
}

// testLog collects the immediate children of the log root we report on.
type testLog struct {
	Exceptions  []logEntry `xml:"Exception"`
	Errors      []logEntry `xml:"Error"`
	FatalErrors []logEntry `xml:"FatalError"`
}

// ParseLog parses the XML log produced by Boost.Test into failure records.
//
// Fatal errors generate invalid XML of the form
// <FatalError>...</FatalError><TestLog>...</TestLog> - two top-level elements
// with no common root - so that one case is split and the fragment is parsed
// as its own document. Any other malformation is a hard error: it means a
// framework or integration bug we cannot safely interpret.
func ParseLog(log string) ([]domain.FailureRecord, error) {
	if log == "" {
		return nil, nil
	}

	var records []domain.FailureRecord

	if strings.HasPrefix(log, "<FatalError") {
		fatal, rest, _ := strings.Cut(log, fatalErrorCloseTag)
		fatal += fatalErrorCloseTag // put back, consumed by the split
		var frag logEntry
		if err := xml.Unmarshal([]byte(fatal), &frag); err != nil {
			return nil, fmt.Errorf("parse fatal error fragment: %w", err)
		}
		records = append(records, domain.NewFailureRecord(frag.File, frag.Line, "Fatal Error: "+frag.Text))
		log = rest
	}

	var parsed testLog
	if err := xml.Unmarshal([]byte(log), &parsed); err != nil {
		return nil, fmt.Errorf("parse test log: %w", err)
	}

	// Collection order (exceptions, then errors, then fatal errors) is part of
	// the output contract.
	for _, group := range [][]logEntry{parsed.Exceptions, parsed.Errors, parsed.FatalErrors} {
		for _, entry := range group {
			records = append(records, domain.NewFailureRecord(entry.File, entry.Line, entry.Text))
		}
	}
	return records, nil
}
