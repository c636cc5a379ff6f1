package git

import (
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTotalsAndOrder(t *testing.T) {
	stats := object.FileStats{
		{Name: "small.go", Addition: 1, Deletion: 1},
		{Name: "big.go", Addition: 40, Deletion: 10},
		{Name: "tie.go", Addition: 2, Deletion: 0},
		{Name: "other.go", Addition: 0, Deletion: 2},
	}

	changes := Aggregate(stats)

	assert.Equal(t, 43, changes.Additions)
	assert.Equal(t, 13, changes.Deletions)

	// Descending churn, ties keeping diff order.
	var paths []string
	for _, fc := range changes.Files {
		paths = append(paths, fc.Path)
	}
	assert.Equal(t, []string{"big.go", "small.go", "tie.go", "other.go"}, paths)

	perFile := 0
	for i, fc := range changes.Files {
		perFile += fc.Additions + fc.Deletions
		if i > 0 {
			prev := changes.Files[i-1]
			assert.GreaterOrEqual(t, prev.Additions+prev.Deletions, fc.Additions+fc.Deletions)
		}
	}
	assert.Equal(t, changes.Additions+changes.Deletions, perFile)
}

func TestAggregateEmptyDiff(t *testing.T) {
	changes := Aggregate(nil)
	assert.Zero(t, changes.Additions)
	assert.Zero(t, changes.Deletions)
	assert.Empty(t, changes.Files)
}

func TestChangesInitialCommitDiffsAgainstEmptyTree(t *testing.T) {
	tr := newTestRepo(t)
	tr.writeFile(t, "a.txt", "one\ntwo\nthree\n")
	tr.writeFile(t, "b.txt", "x\n")
	hash := tr.commit(t, "initial", "dev@example.com", time.Date(2014, time.March, 3, 12, 0, 0, 0, time.UTC))

	changes, err := Changes(tr.lookup(t, hash), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, changes.Additions)
	assert.Equal(t, 0, changes.Deletions)
	require.Len(t, changes.Files, 2)
	for _, fc := range changes.Files {
		assert.Zero(t, fc.Deletions, "initial commit must report %s as purely added", fc.Path)
	}
	assert.Equal(t, "a.txt", changes.Files[0].Path)
	assert.Equal(t, "b.txt", changes.Files[1].Path)
}

func TestChangesAgainstPreviousCommit(t *testing.T) {
	tr := newTestRepo(t)
	when := time.Date(2014, time.March, 3, 12, 0, 0, 0, time.UTC)

	tr.writeFile(t, "a.txt", "one\ntwo\nthree\n")
	tr.writeFile(t, "b.txt", "x\n")
	first := tr.commit(t, "initial", "dev@example.com", when)

	tr.writeFile(t, "b.txt", "x\ny\nz\n")
	tr.removeFile(t, "a.txt")
	second := tr.commit(t, "rework", "dev@example.com", when.Add(time.Hour))

	changes, err := Changes(tr.lookup(t, second), tr.lookup(t, first))
	require.NoError(t, err)

	assert.Equal(t, 2, changes.Additions)
	assert.Equal(t, 3, changes.Deletions)
	require.Len(t, changes.Files, 2)
	assert.Equal(t, "a.txt", changes.Files[0].Path)
	assert.Equal(t, 3, changes.Files[0].Deletions)
	assert.Equal(t, "b.txt", changes.Files[1].Path)
	assert.Equal(t, 2, changes.Files[1].Additions)
}
