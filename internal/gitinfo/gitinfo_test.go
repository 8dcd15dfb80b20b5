package gitinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestHead(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "VERSION"), []byte("0.1.0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("VERSION"); err != nil {
		t.Fatalf("add: %v", err)
	}
	hash, err := wt.Commit("release 0.1.0", &git.CommitOptions{
		Author: &object.Signature{Name: "dml", Email: "dml@example.com", When: time.Unix(0, 0)},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	sub := filepath.Join(dir, "nested", "deeper")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got, err := Head(sub)
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if got != hash.String() {
		t.Fatalf("got %s want %s", got, hash)
	}
}

func TestHeadNoRepository(t *testing.T) {
	_, err := Head(t.TempDir())
	if !errors.Is(err, ErrNoRepository) {
		t.Fatalf("unexpected error: %v", err)
	}
}
