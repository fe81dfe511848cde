// Package changelog extracts version entries from a Markdown changelog.
//
// This package implements:
//   - Pattern-based scanning of "## Version <token>" headings
//   - A goldmark-backed scanner that ignores headings inside code blocks
//   - Version comparison against externally supplied candidates (release tags)
//   - Verbatim writing of an extracted entry to an output file
//
// An entry spans from the start of its heading line up to the next
// "## Version" heading or the end of the document. Changelogs are expected
// to list versions newest first, so the first entry is the latest release.
package changelog
