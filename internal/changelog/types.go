package changelog

import (
	"fmt"
	"strings"
)

// Match is a single changelog entry found in a document.
// Text is the verbatim span of the entry, heading line included.
// Start and End are byte offsets of that span in the scanned document.
type Match struct {
	Text    string
	Version string
	Start   int
	End     int
}

// Heading returns the first line of the entry without its line terminator.
func (m Match) Heading() string {
	for i := 0; i < len(m.Text); i++ {
		if m.Text[i] == '\n' {
			return trimCR(m.Text[:i])
		}
	}
	return trimCR(m.Text)
}

func trimCR(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\r' {
		return s[:len(s)-1]
	}
	return s
}

// ScanMode selects how entry headings are located in a document.
type ScanMode string

const (
	// ScanRegex matches headings with the heading pattern over the raw text.
	ScanRegex ScanMode = "regex"
	// ScanMarkdown only considers real level-2 headings of the parsed document.
	ScanMarkdown ScanMode = "markdown"
)

// ParseScanMode converts a configuration value into a ScanMode.
// An empty value selects ScanRegex.
func ParseScanMode(s string) (ScanMode, error) {
	switch ScanMode(s) {
	case "", ScanRegex:
		return ScanRegex, nil
	case ScanMarkdown:
		return ScanMarkdown, nil
	default:
		return "", fmt.Errorf("unknown scan mode %q (expected one of: %s)", s, strings.Join(ValidScanModes(), ", "))
	}
}

// ValidScanModes returns the accepted scan mode names.
func ValidScanModes() []string {
	return []string{string(ScanRegex), string(ScanMarkdown)}
}
