package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/uniphil/gittime/internal/logger"
)

var ErrNotAGitRepository = errors.New("not a git repository")

// DefaultRootDepth is how many parent directories to search when opening a
// local repository from somewhere inside its working tree.
const DefaultRootDepth = 16

// Repository is a read-only handle on commit history. The session never
// mutates it; lifecycle belongs to whoever acquired it.
type Repository struct {
	path string
	repo *git.Repository
}

// Acquire makes repository history available for inspection. An existing
// local directory is opened in place; anything else is treated as a clone
// URL and cloned bare into a temporary directory. The returned cleanup
// removes the temporary clone and must be called once the session is over.
func Acquire(source string) (*Repository, func(), error) {
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		repo, err := OpenRepository(source, DefaultRootDepth)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
	return cloneTemporary(source)
}

// Open Git repository at the given path
func OpenRepository(path string, depth int) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	repoPath, err := findRepositoryRoot(absPath, depth)
	if err != nil {
		return nil, err
	}

	logger.GlobalLogger.Verbosef("Opening Git repository at: %s", repoPath)

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotAGitRepository
		}
		return nil, err
	}

	return &Repository{
		path: repoPath,
		repo: repo,
	}, nil
}

func cloneTemporary(url string) (*Repository, func(), error) {
	dir, err := os.MkdirTemp("", "gittime-*")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temporary clone directory: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.GlobalLogger.Warnf("Failed to clean up %s: %v", dir, err)
		}
	}

	logger.GlobalLogger.Printf("cloning %s...\n\n", url)

	repo, err := git.PlainClone(dir, true, &git.CloneOptions{URL: url})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	return &Repository{path: dir, repo: repo}, cleanup, nil
}

func findRepositoryRoot(startPath string, depth int) (string, error) {
	current := startPath

	logger.GlobalLogger.Debugf("Searching for Git repository root with maximum depth of %d", depth)

	for i := 0; i < depth; i++ {
		gitPath := filepath.Join(current, ".git")

		logger.GlobalLogger.Debugf("Checking for Git repository at: %s", gitPath)

		// Check if .git exists
		if fi, err := os.Stat(gitPath); err == nil {
			if fi.IsDir() {
				return current, nil
			}

			// Handle git submodules
			if content, err := os.ReadFile(gitPath); err == nil {
				if strings.HasPrefix(string(content), "gitdir: ") {
					return current, nil
				}
			}
		}

		// A bare clone has no .git directory; the repository is the
		// directory itself.
		if fi, err := os.Stat(filepath.Join(current, "objects")); err == nil && fi.IsDir() {
			return current, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			break // Reached filesystem root
		}
		current = parent
	}

	return "", ErrNotAGitRepository
}

func (r *Repository) Path() string {
	return r.path
}
