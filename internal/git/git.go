// Package git resolves release versions from a Git repository using the
// go-git library, so no git CLI installation is required. Its main use is
// collecting the tags that point at HEAD, which during release automation
// name the version being released.
package git

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens a git repository at the specified path or current working directory.
// It uses go-git's PlainOpenWithOptions with DetectDotGit enabled to traverse
// up the directory tree to find the repository root.
// If path is empty, the current working directory is used.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
	}

	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	return repo, nil
}

// IsGitRepository checks if path (or the current directory when empty) is
// within a git repository.
func IsGitRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsGitRepository: %v", result)
	return result
}

// HeadTags returns the short names of all tags pointing at the HEAD commit,
// sorted by name. Both lightweight and annotated tags are included.
// A repository without commits yields an empty list.
func HeadTags(path string) ([]string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logDebug("[git] HeadTags: repository has no commits")
			return nil, nil
		}
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		target, err := tagTarget(repo, ref)
		if err != nil {
			return err
		}
		if target == head.Hash() {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}

	sort.Strings(tags)
	logDebug("[git] HeadTags: %v at %s", tags, head.Hash())
	return tags, nil
}

// tagTarget returns the commit a tag reference points to, peeling
// annotated tag objects.
func tagTarget(repo *git.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	obj, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		commit, err := obj.Commit()
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("peeling tag %s: %w", ref.Name().Short(), err)
		}
		return commit.Hash, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		// Lightweight tag: the reference points at the commit directly.
		return ref.Hash(), nil
	default:
		return plumbing.ZeroHash, fmt.Errorf("reading tag %s: %w", ref.Name().Short(), err)
	}
}
