package changelog

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadDocument reads the changelog at path.
// Returns a ReadError if the file is missing, unreadable or empty of valid text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !isText(data) {
		return "", &ReadError{Path: path, Err: fmt.Errorf("file is not valid UTF-8 text")}
	}
	return string(data), nil
}

// WriteEntry writes text verbatim to path, creating or truncating the file.
// The parent directory must already exist.
func WriteEntry(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// isText reports whether data is UTF-8 without NUL bytes.
func isText(data []byte) bool {
	if !utf8.Valid(data) {
		return false
	}
	return bytes.IndexByte(data, 0) < 0
}
