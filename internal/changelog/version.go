package changelog

import "strings"

// MatchOptions controls how a changelog version is compared to candidates.
type MatchOptions struct {
	// Normalize compares versions case-insensitively and ignores a leading
	// "v", so a tag "v1.2.0" matches an entry "1.2.0".
	Normalize bool
}

// CheckVersion succeeds if version equals at least one of the candidates.
// Position in the list is irrelevant; entries that are not versions (such
// as a program path) simply never match.
// Returns a VersionMismatchError otherwise.
func CheckVersion(version string, candidates []string, opts MatchOptions) error {
	want := version
	if opts.Normalize {
		want = NormalizeVersion(version)
	}

	for _, c := range candidates {
		if opts.Normalize {
			c = NormalizeVersion(c)
		}
		if c == want {
			return nil
		}
	}

	return &VersionMismatchError{Version: version}
}

// NormalizeVersion normalizes a version string by removing the "v" prefix.
// This allows accepting both "v0.6.0" and "0.6.0" as input.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(version), "v")
}
