package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/ariel-frischer/latest-changelog/internal/changelog"
	"github.com/ariel-frischer/latest-changelog/internal/config"
)

// Common error messages for the latest-changelog CLI.
// These templates ensure consistent, actionable error messages.

// InvalidPattern creates an error for a heading or boundary pattern that cannot be compiled.
func InvalidPattern(err *changelog.PatternError) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  err.Error(),
		Err:      err,
		Remediation: []string{
			"Check heading_pattern and boundary_pattern in your config (RE2 syntax)",
			"The heading pattern must define a (?P<version>...) group",
			"Remove both keys to use the built-in \"## Version <token>\" patterns",
		},
	}
}

// ChangelogUnreadable creates an error when the changelog cannot be read.
func ChangelogUnreadable(err *changelog.ReadError) *CLIError {
	remediation := []string{"Check that the changelog is a UTF-8 text file"}
	if stderrors.Is(err, fs.ErrNotExist) {
		remediation = []string{
			"Run from the repository root, where CHANGELOG.md lives",
			"Or pass the path explicitly: latest-changelog --changelog <path>",
		}
	}
	return &CLIError{
		Category:    Prerequisite,
		Message:     err.Error(),
		Err:         err,
		Remediation: remediation,
	}
}

// VersionMismatch creates an error when the newest changelog entry does not
// match any expected version.
func VersionMismatch(err *changelog.VersionMismatchError) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  err.Error(),
		Err:      err,
		Remediation: []string{
			"Add a \"## Version <tag>\" entry at the top of the changelog for the version being released",
			fmt.Sprintf("Or, if %s is the release being made, pass %s as the expected version or re-tag the release", err.Version, err.Version),
			"Use --normalize if the tag carries a leading \"v\"",
		},
	}
}

// OutputNotWritable creates an error when the output file cannot be written.
func OutputNotWritable(err *changelog.WriteError) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  err.Error(),
		Err:      err,
		Remediation: []string{
			"Ensure the parent directory of " + err.Path + " exists and is writable",
			"Or choose another file with --output",
		},
	}
}

// ConfigInvalid creates an error for a config file or value that cannot be used.
func ConfigInvalid(err error) *CLIError {
	return NewConfigError("invalid configuration: "+err.Error(),
		"Check .latest-changelog.yml and LATEST_CHANGELOG_* environment variables",
		"Generate a commented template with: latest-changelog init",
	).WithCause(err)
}

// GitTagsUnavailable creates an error when HEAD tags cannot be resolved.
func GitTagsUnavailable(err error) *CLIError {
	return NewPrerequisiteError("reading git tags: "+err.Error(),
		"Run inside a git repository or drop --git-tags",
		"Pass the expected version as an argument instead",
	).WithCause(err)
}

// FromError folds any error returned by a run into a CLIError.
// Errors that already are CLIErrors are returned unchanged.
func FromError(err error) *CLIError {
	if err == nil {
		return nil
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		patternErr  *changelog.PatternError
		readErr     *changelog.ReadError
		mismatchErr *changelog.VersionMismatchError
		writeErr    *changelog.WriteError
	)
	switch {
	case stderrors.As(err, &patternErr):
		return InvalidPattern(patternErr)
	case stderrors.As(err, &readErr):
		return ChangelogUnreadable(readErr)
	case stderrors.As(err, &mismatchErr):
		return VersionMismatch(mismatchErr)
	case stderrors.As(err, &writeErr):
		return OutputNotWritable(writeErr)
	case config.IsValidationError(err):
		return ConfigInvalid(err)
	default:
		return NewRuntimeError(err.Error()).WithCause(err)
	}
}
