package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ariel-frischer/latest-changelog/internal/changelog"
)

const (
	// DefaultChangelogPath is the changelog read when no path is configured.
	DefaultChangelogPath = "./CHANGELOG.md"
	// DefaultOutputPath is the file the latest entry is written to.
	DefaultOutputPath = "./latest_changelog.md"
)

// Options configures a run.
type Options struct {
	ChangelogPath string
	OutputPath    string

	// Versions are the expected versions, usually the release tag.
	// The entry's version must equal at least one of them.
	Versions []string
	Match    changelog.MatchOptions

	Mode changelog.ScanMode
	// AllMatches validates and writes every entry in document order instead
	// of only the newest one. Each write overwrites the previous one and the
	// first failure stops the run.
	AllMatches bool

	// Extractor defaults to one built from the default patterns.
	Extractor *changelog.Extractor
	// Stdout receives the status messages (default: os.Stdout).
	Stdout io.Writer
	// Logger receives debug output (default: discarded).
	Logger *slog.Logger
}

// Result describes how far a run got.
type Result struct {
	State     State
	Processed []changelog.Match
	Written   bool
}

// Run executes the read, extract, validate and write steps.
// The returned Result is never nil, even when an error is returned.
func Run(opts Options) (*Result, error) {
	opts = withDefaults(opts)
	log := opts.Logger
	res := &Result{State: StateStart}

	doc, err := changelog.ReadDocument(opts.ChangelogPath)
	if err != nil {
		return res, err
	}
	res.State = StateLoaded
	log.Debug("changelog loaded", "path", opts.ChangelogPath, "bytes", len(doc))

	matches, err := entries(opts, doc)
	if errors.Is(err, changelog.ErrNotFound) {
		log.Debug("no version entry, nothing to write", "mode", string(opts.Mode))
		res.State = StateDone
		return res, nil
	}
	if err != nil {
		return res, err
	}
	log.Debug("entries selected", "count", len(matches), "mode", string(opts.Mode))

	for _, m := range matches {
		if err := process(opts, res, m); err != nil {
			if res.Written {
				log.Warn("run halted after an earlier entry was written",
					"output", opts.OutputPath, "version", m.Version)
			}
			return res, err
		}
	}

	res.State = StateDone
	return res, nil
}

// entries returns the newest entry, or every entry when AllMatches is set.
func entries(opts Options, doc string) ([]changelog.Match, error) {
	if !opts.AllMatches {
		m, err := opts.Extractor.Latest(doc, opts.Mode)
		if err != nil {
			return nil, err
		}
		return []changelog.Match{m}, nil
	}
	matches := opts.Extractor.Scan(doc, opts.Mode)
	if len(matches) == 0 {
		return nil, changelog.ErrNotFound
	}
	return matches, nil
}

func process(opts Options, res *Result, m changelog.Match) error {
	res.State = StateMatched
	res.Processed = append(res.Processed, m)
	opts.Logger.Debug("checking entry", "version", m.Version, "candidates", opts.Versions)

	if err := changelog.CheckVersion(m.Version, opts.Versions, opts.Match); err != nil {
		return err
	}
	res.State = StateValidated
	fmt.Fprintln(opts.Stdout, "Versions match!")

	if err := changelog.WriteEntry(opts.OutputPath, m.Text); err != nil {
		return err
	}
	res.State = StateWritten
	res.Written = true
	fmt.Fprintf(opts.Stdout, "OK: written latest changelog to file %s.\n", opts.OutputPath)
	return nil
}

func withDefaults(opts Options) Options {
	if opts.ChangelogPath == "" {
		opts.ChangelogPath = DefaultChangelogPath
	}
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.Mode == "" {
		opts.Mode = changelog.ScanRegex
	}
	if opts.Extractor == nil {
		opts.Extractor = defaultExtractor
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opts
}

var defaultExtractor = changelog.MustNewExtractor(changelog.Patterns{})

// IsNoOp reports whether a successful run found nothing to write.
func (r *Result) IsNoOp() bool {
	return r.State == StateDone && len(r.Processed) == 0
}
