package changelog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoVersions = `## Version 1.2.0 (2023-04-20)
- Added feature X.
## Version 1.1.0 (2023-03-01)
- Fixed bug Y.
`

func defaultExtractor(t *testing.T) *Extractor {
	t.Helper()
	e, err := NewExtractor(Patterns{})
	require.NoError(t, err)
	return e
}

func TestExtractorAll(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc      string
		versions []string
		texts    []string
	}{
		"newest first": {
			doc:      twoVersions,
			versions: []string{"1.2.0", "1.1.0"},
			texts: []string{
				"## Version 1.2.0 (2023-04-20)\n- Added feature X.\n",
				"## Version 1.1.0 (2023-03-01)\n- Fixed bug Y.\n",
			},
		},
		"single entry without trailing newline": {
			doc:      "## Version 0.1.0\n- Initial release",
			versions: []string{"0.1.0"},
			texts:    []string{"## Version 0.1.0\n- Initial release"},
		},
		"heading at end of document": {
			doc:      "## Version 2.0",
			versions: []string{"2.0"},
			texts:    []string{"## Version 2.0"},
		},
		"preamble is skipped": {
			doc:      "# Changelog\n\nAll notable changes.\n\n## Version 1.0.0 (2024-01-01)\n- x\n",
			versions: []string{"1.0.0"},
			texts:    []string{"## Version 1.0.0 (2024-01-01)\n- x\n"},
		},
		"multi-line body": {
			doc:      "## Version 3.0.0\n\n### Added\n- a\n\n### Fixed\n- b\n\n## Version 2.0.0\n- c\n",
			versions: []string{"3.0.0", "2.0.0"},
			texts: []string{
				"## Version 3.0.0\n\n### Added\n- a\n\n### Fixed\n- b\n\n",
				"## Version 2.0.0\n- c\n",
			},
		},
		"token with letters is not an entry but still a boundary": {
			doc:      "## Version 1.1.0\n- new\n## Version 1.1.0-rc1\n- rc\n## Version 1.0.0\n- old\n",
			versions: []string{"1.1.0", "1.0.0"},
			texts: []string{
				"## Version 1.1.0\n- new\n",
				"## Version 1.0.0\n- old\n",
			},
		},
		"tilde and unicode digits": {
			doc:      "## Version 1.0~1\n- a\n## Version ١٫٢\n- b\n",
			versions: []string{"1.0~1", "١٫٢"},
			texts:    []string{"## Version 1.0~1\n- a\n", "## Version ١٫٢\n- b\n"},
		},
		"crlf line endings": {
			doc:      "## Version 1.0.0\r\n- a\r\n## Version 0.9.0\r\n- b\r\n",
			versions: []string{"1.0.0", "0.9.0"},
			texts:    []string{"## Version 1.0.0\r\n- a\r\n", "## Version 0.9.0\r\n- b\r\n"},
		},
		"no-break space after token": {
			doc:      "## Version 1.0\u00a0(2023)\n- x\n",
			versions: []string{"1.0"},
			texts:    []string{"## Version 1.0\u00a0(2023)\n- x\n"},
		},
		"unicode space separators": {
			doc:      "##\u00a0Version\u2003 2.1\u3000x\n- y\n",
			versions: []string{"2.1"},
			texts:    []string{"##\u00a0Version\u2003 2.1\u3000x\n- y\n"},
		},
		"heading starting with Version ends the entry": {
			doc:      "## Version 1.0\n- x\n## Versioning policy\n- semver\n",
			versions: []string{"1.0"},
			texts:    []string{"## Version 1.0\n- x\n"},
		},
		"line separator does not join heading and token": {
			doc: "## Version\u2028 1.0\n- x\n",
		},
		"no entries": {
			doc: "# Changelog\n\nNothing released yet.\n",
		},
		"level three heading": {
			doc: "### Version 1.0.0\n- a\n",
		},
		"heading not at line start": {
			doc: "see ## Version 1.0.0 below\n",
		},
		"lowercase keyword": {
			doc: "## version 1.0.0\n- a\n",
		},
	}

	e := defaultExtractor(t)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			matches := e.All(tt.doc)
			require.Len(t, matches, len(tt.versions))
			for i, m := range matches {
				assert.Equal(t, tt.versions[i], m.Version)
				assert.Equal(t, tt.texts[i], m.Text)
				assert.Equal(t, tt.doc[m.Start:m.End], m.Text)
			}
		})
	}
}

func TestExtractorLatest(t *testing.T) {
	t.Parallel()
	e := defaultExtractor(t)

	m, err := e.Latest(twoVersions, ScanRegex)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", m.Version)
	assert.Equal(t, "## Version 1.2.0 (2023-04-20)", m.Heading())
	assert.True(t, strings.HasPrefix(m.Text, m.Heading()))

	_, err = e.Latest("# Changelog\n", ScanRegex)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExtractorRoundTrip(t *testing.T) {
	t.Parallel()
	e := defaultExtractor(t)

	docs := []string{
		twoVersions,
		"## Version 0.1.0\n- Initial release",
		"## Version 2.0",
		"## Version 1.0.0\r\n- a\r\n",
	}
	for _, doc := range docs {
		for _, m := range e.All(doc) {
			version, ok := e.ParseVersion(m.Heading())
			require.True(t, ok, "heading %q should re-parse", m.Heading())
			assert.Equal(t, m.Version, version)

			again := e.All(m.Text)
			require.Len(t, again, 1)
			assert.Equal(t, m.Text, again[0].Text)
		}
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()
	e := defaultExtractor(t)

	tests := map[string]struct {
		heading string
		want    string
		wantOK  bool
	}{
		"with date":        {heading: "## Version 1.2.0 (2023-04-20)", want: "1.2.0", wantOK: true},
		"bare":             {heading: "## Version 1.2.0", want: "1.2.0", wantOK: true},
		"tabs":             {heading: "##\tVersion\t4.5", want: "4.5", wantOK: true},
		"prerelease":       {heading: "## Version 1.2.0-beta", wantOK: false},
		"no version":       {heading: "## Version", wantOK: false},
		"other heading":    {heading: "## Unreleased", wantOK: false},
		"leading text":     {heading: "x ## Version 1.0", wantOK: false},
		"level one":        {heading: "# Version 1.0", wantOK: false},
		"level three":      {heading: "### Version 1.0", wantOK: false},
		"punctuation only": {heading: "## Version ...", want: "...", wantOK: true},
		"no-break space":   {heading: "## Version 1.0\u00a0(2023)", want: "1.0", wantOK: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, ok := e.ParseVersion(tt.heading)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewExtractor_InvalidPatterns(t *testing.T) {
	t.Parallel()

	tests := map[string]Patterns{
		"heading does not compile":  {Heading: "("},
		"heading without group":     {Heading: `(?m)^## Version (\S+)`},
		"boundary does not compile": {Boundary: "["},
	}

	for name, p := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := NewExtractor(p)
			require.Error(t, err)

			var pe *PatternError
			require.True(t, errors.As(err, &pe))
			assert.NotEmpty(t, pe.Pattern)
			assert.Contains(t, err.Error(), "Error compiling changelog regex")
		})
	}
}

func TestNewExtractor_CustomPatterns(t *testing.T) {
	t.Parallel()

	e, err := NewExtractor(Patterns{
		Heading:  `(?m)^## \[(?P<version>[0-9.]+)\]`,
		Boundary: `(?m)^## \[`,
	})
	require.NoError(t, err)

	doc := "# Changelog\n\n## [Unreleased]\n- wip\n\n## [1.0.0] - 2024-01-15\n- Initial\n\n## [0.1.0] - 2024-01-01\n- Beta\n"
	matches := e.All(doc)
	require.Len(t, matches, 2)
	assert.Equal(t, "1.0.0", matches[0].Version)
	assert.Equal(t, "## [1.0.0] - 2024-01-15\n- Initial\n\n", matches[0].Text)
}

func TestMustNewExtractor_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustNewExtractor(Patterns{Heading: "("}) })
	assert.NotPanics(t, func() { MustNewExtractor(Patterns{}) })
}

func TestParseScanMode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in      string
		want    ScanMode
		wantErr bool
	}{
		"empty":    {in: "", want: ScanRegex},
		"regex":    {in: "regex", want: ScanRegex},
		"markdown": {in: "markdown", want: ScanMarkdown},
		"unknown":  {in: "ast", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseScanMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
