package git

import (
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/uniphil/gittime/internal/logger"
)

// WalkOptions bounds and filters a history walk.
type WalkOptions struct {
	Start  string // revision to fast-forward to, yielded inclusively
	End    string // revision whose ancestry is walked, defaults to HEAD
	Author string // only yield commits authored by this email
}

// Walker yields the ancestors of the end revision in chronological order,
// oldest first. It is a finite, consume-once sequence for a single consumer;
// commit objects are loaded lazily, one per Next call.
type Walker struct {
	repo           *git.Repository
	hashes         []plumbing.Hash // oldest first
	pos            int
	start          plumbing.Hash
	fastForwarding bool
	author         string
}

// NewWalker resolves the range bounds and prepares a chronological walk.
// An unresolvable start or end revision fails here, before any commit is
// processed.
func NewWalker(r *Repository, opts WalkOptions) (*Walker, error) {
	w := &Walker{repo: r.repo, author: opts.Author}

	var end plumbing.Hash
	if opts.End != "" {
		h, err := r.repo.ResolveRevision(plumbing.Revision(opts.End))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve end revision %q: %w", opts.End, err)
		}
		end = *h
	} else {
		head, err := r.repo.Head()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
		}
		end = head.Hash()
	}

	if opts.Start != "" {
		h, err := r.repo.ResolveRevision(plumbing.Revision(opts.Start))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve start revision %q: %w", opts.Start, err)
		}
		w.start = *h
		w.fastForwarding = true
	}

	iter, err := r.repo.Log(&git.LogOptions{From: end, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", end, err)
	}
	defer iter.Close()

	// The store hands history out newest-first; buffer hashes only and let
	// Next load commit objects once the order is reversed.
	err = iter.ForEach(func(c *object.Commit) error {
		w.hashes = append(w.hashes, c.Hash)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history from %s: %w", end, err)
	}
	for i, j := 0, len(w.hashes)-1; i < j; i, j = i+1, j-1 {
		w.hashes[i], w.hashes[j] = w.hashes[j], w.hashes[i]
	}

	logger.GlobalLogger.Verbosef("Walking %d commits in chronological order", len(w.hashes))

	return w, nil
}

// Next returns the next commit in the range, or io.EOF once the walk is
// exhausted. Fast-forwarding to the start revision and author filtering are
// independent stages: a filtered-out commit never disturbs the range bounds.
// A start revision that is not an ancestor of the end yields nothing.
func (w *Walker) Next() (*object.Commit, error) {
	for w.pos < len(w.hashes) {
		hash := w.hashes[w.pos]
		w.pos++

		if w.fastForwarding {
			if hash != w.start {
				continue
			}
			w.fastForwarding = false
		}

		commit, err := w.repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
		}

		if w.author != "" && commit.Author.Email != w.author {
			logger.GlobalLogger.Debugf("Skipping %s authored by %s", hash, commit.Author.Email)
			continue
		}

		return commit, nil
	}
	return nil, io.EOF
}
