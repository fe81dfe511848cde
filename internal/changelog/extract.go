package changelog

import (
	"fmt"
	"regexp"
	"sort"
)

const (
	// DefaultHeadingPattern matches an entry heading and captures its version.
	// The version token is made of Unicode numbers, punctuation and '~' and
	// must be followed by Unicode whitespace or the end of the document.
	// Separators are tabs or Unicode space characters, so a heading never
	// spans lines.
	DefaultHeadingPattern = `(?m)^##[\t\p{Zs}]+Version[\t\p{Zs}]+(?P<version>[\p{N}\p{P}~]+)(?:[\s\p{Z}]|\z)`

	// DefaultBoundaryPattern matches the start of any level-2 heading whose
	// text begins with "Version", including "## Versioning policy".
	// An entry ends where the next boundary begins.
	DefaultBoundaryPattern = `(?m)^##[\t\p{Zs}]+Version`

	versionGroup = "version"
)

// Patterns holds the regular expressions used to locate entries.
// Empty fields fall back to the defaults.
type Patterns struct {
	Heading  string
	Boundary string
}

// Extractor locates version entries in changelog documents.
type Extractor struct {
	heading      *regexp.Regexp
	boundary     *regexp.Regexp
	versionIndex int
}

// NewExtractor compiles the given patterns.
// Returns a PatternError if a pattern does not compile or the heading
// pattern has no "version" capture group.
func NewExtractor(p Patterns) (*Extractor, error) {
	if p.Heading == "" {
		p.Heading = DefaultHeadingPattern
	}
	if p.Boundary == "" {
		p.Boundary = DefaultBoundaryPattern
	}

	heading, err := regexp.Compile(p.Heading)
	if err != nil {
		return nil, &PatternError{Pattern: p.Heading, Err: err}
	}
	versionIndex := heading.SubexpIndex(versionGroup)
	if versionIndex < 0 {
		return nil, &PatternError{
			Pattern: p.Heading,
			Err:     fmt.Errorf("missing named group %q", versionGroup),
		}
	}

	boundary, err := regexp.Compile(p.Boundary)
	if err != nil {
		return nil, &PatternError{Pattern: p.Boundary, Err: err}
	}

	return &Extractor{heading: heading, boundary: boundary, versionIndex: versionIndex}, nil
}

// MustNewExtractor is like NewExtractor but panics on error.
// Intended for package-level defaults and tests.
func MustNewExtractor(p Patterns) *Extractor {
	e, err := NewExtractor(p)
	if err != nil {
		panic(err)
	}
	return e
}

// Scan returns the entries of doc in document order using the given mode.
func (e *Extractor) Scan(doc string, mode ScanMode) []Match {
	if mode == ScanMarkdown {
		return e.scanMarkdown(doc)
	}
	return e.All(doc)
}

// All returns every non-overlapping heading match in doc, in document order.
// Each entry runs from its heading line to the next boundary or end of doc.
func (e *Extractor) All(doc string) []Match {
	locs := e.heading.FindAllStringSubmatchIndex(doc, -1)
	if len(locs) == 0 {
		return nil
	}

	bounds := e.boundaryStarts(doc)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		start := loc[0]
		end := nextBoundary(bounds, start, len(doc))
		matches = append(matches, Match{
			Text:    doc[start:end],
			Version: doc[loc[2*e.versionIndex]:loc[2*e.versionIndex+1]],
			Start:   start,
			End:     end,
		})
	}
	return matches
}

// Latest returns the first entry of doc, which for a newest-first changelog
// is the latest release. Returns ErrNotFound when doc has no entry.
func (e *Extractor) Latest(doc string, mode ScanMode) (Match, error) {
	matches := e.Scan(doc, mode)
	if len(matches) == 0 {
		return Match{}, ErrNotFound
	}
	return matches[0], nil
}

// ParseVersion extracts the version token from a single heading line.
func (e *Extractor) ParseVersion(heading string) (string, bool) {
	loc := e.heading.FindStringSubmatchIndex(heading)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return heading[loc[2*e.versionIndex]:loc[2*e.versionIndex+1]], true
}

func (e *Extractor) boundaryStarts(doc string) []int {
	locs := e.boundary.FindAllStringIndex(doc, -1)
	starts := make([]int, len(locs))
	for i, loc := range locs {
		starts[i] = loc[0]
	}
	return starts
}

// nextBoundary returns the first boundary strictly after start, or limit.
// bounds must be sorted ascending.
func nextBoundary(bounds []int, start, limit int) int {
	i := sort.SearchInts(bounds, start+1)
	if i < len(bounds) {
		return bounds[i]
	}
	return limit
}
