// Package gitinfo reads commit information from the repository containing a
// directory.
package gitinfo

import (
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// ErrNoRepository is returned when dir is not inside a git repository.
var ErrNoRepository = errors.New("not a git repository")

// Head returns the HEAD commit hash of the repository containing dir. Parent
// directories are searched.
func Head(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNoRepository
		}
		return "", fmt.Errorf("open repository: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}
