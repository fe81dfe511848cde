package cli

// Exit codes for the latest-changelog CLI.
// Release pipelines only need to know whether the extract can be trusted.
const (
	// ExitSuccess indicates the entry was written, or there was nothing to write.
	ExitSuccess = 0

	// ExitFailure indicates any error: unreadable changelog, version mismatch,
	// invalid configuration or pattern, or an unwritable output file.
	ExitFailure = 1
)

// ExitCode maps the error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err != nil {
		return ExitFailure
	}
	return ExitSuccess
}
