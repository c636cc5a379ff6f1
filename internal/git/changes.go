package git

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing/object"
)

// FileChange records the line churn of a single file in a diff.
type FileChange struct {
	Path      string
	Additions int
	Deletions int
}

// ChangeSet aggregates the diff between two tree states: overall line
// totals plus a per-file breakdown ordered by descending churn.
type ChangeSet struct {
	Additions int
	Deletions int
	Files     []FileChange
}

// Aggregate reduces per-file patch stats into a ChangeSet. Files are sorted
// by descending added+removed; ties keep their original diff order.
func Aggregate(stats object.FileStats) ChangeSet {
	changes := ChangeSet{Files: make([]FileChange, 0, len(stats))}
	for _, stat := range stats {
		changes.Additions += stat.Addition
		changes.Deletions += stat.Deletion
		changes.Files = append(changes.Files, FileChange{
			Path:      stat.Name,
			Additions: stat.Addition,
			Deletions: stat.Deletion,
		})
	}
	sort.SliceStable(changes.Files, func(i, j int) bool {
		return changes.Files[i].Additions+changes.Files[i].Deletions >
			changes.Files[j].Additions+changes.Files[j].Deletions
	})
	return changes
}

// Changes diffs a commit against the previously walked commit. A nil
// previous commit means the diff base is the empty tree, so the first commit
// of a range reports every file as purely added.
func Changes(commit, previous *object.Commit) (ChangeSet, error) {
	tree, err := commit.Tree()
	if err != nil {
		return ChangeSet{}, fmt.Errorf("failed to resolve tree for %s: %w", commit.Hash, err)
	}

	var base *object.Tree
	if previous != nil {
		base, err = previous.Tree()
		if err != nil {
			return ChangeSet{}, fmt.Errorf("failed to resolve tree for %s: %w", previous.Hash, err)
		}
	}

	diff, err := object.DiffTree(base, tree)
	if err != nil {
		return ChangeSet{}, fmt.Errorf("failed to diff trees: %w", err)
	}

	patch, err := diff.Patch()
	if err != nil {
		return ChangeSet{}, fmt.Errorf("failed to compute patch: %w", err)
	}

	return Aggregate(patch.Stats()), nil
}
