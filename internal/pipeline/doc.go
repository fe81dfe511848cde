// Package pipeline drives a single latest-changelog run: read the changelog,
// find its newest entry, check the entry's version against the expected
// versions and write the entry to the output file.
//
// Every failure halts the run and is returned to the caller; there are no
// retries and no partial-success paths. A changelog without any version
// entry is a successful run that writes nothing.
package pipeline
