package git

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/require"
)

// testRepo builds real commit history in memory so walker and diff behavior
// is exercised against actual git plumbing.
type testRepo struct {
	fs   billy.Filesystem
	wt   *gogit.Worktree
	repo *Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	fs := memfs.New()
	r, err := gogit.Init(memory.NewStorage(), fs)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)
	return &testRepo{fs: fs, wt: wt, repo: &Repository{path: "in-memory", repo: r}}
}

func (tr *testRepo) writeFile(t *testing.T, name, content string) {
	t.Helper()
	f, err := tr.fs.Create(name)
	require.NoError(t, err)
	_, err = f.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = tr.wt.Add(name)
	require.NoError(t, err)
}

func (tr *testRepo) removeFile(t *testing.T, name string) {
	t.Helper()
	_, err := tr.wt.Remove(name)
	require.NoError(t, err)
}

func (tr *testRepo) commit(t *testing.T, msg, email string, when time.Time) plumbing.Hash {
	t.Helper()
	hash, err := tr.wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: email, When: when},
	})
	require.NoError(t, err)
	return hash
}

func (tr *testRepo) lookup(t *testing.T, hash plumbing.Hash) *object.Commit {
	t.Helper()
	commit, err := tr.repo.repo.CommitObject(hash)
	require.NoError(t, err)
	return commit
}
