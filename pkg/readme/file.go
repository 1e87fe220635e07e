package readme

import (
	"errors"
	"os"
	"path/filepath"

	f "github.com/f4ah6o/bdg/pkg/functional"
)

var (
	defaultCandidates = []string{"README.md", "README.mbt.md", filepath.Join("docs", "README.md")}
	moonbitCandidates = []string{"README.mbt.md", "README.md", filepath.Join("docs", "README.md")}
)

// Resolve picks the README under root. When none exists the first
// candidate is returned so it can be created.
func Resolve(root string, preferMoonbit bool) string {
	candidates := defaultCandidates
	if preferMoonbit {
		candidates = moonbitCandidates
	}
	found, ok := f.Find(candidates, func(name string) bool {
		_, err := os.Stat(filepath.Join(root, name))
		return err == nil
	})
	if !ok {
		found = candidates[0]
	}
	return filepath.Join(root, found)
}

// Load reads path. A missing file reads as an empty document.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteAtomic writes content next to path and renames it into place.
func WriteAtomic(path string, content string) error {
	tmp := path + ".bdg.tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
