package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

const (
	PackageJSONFile = "package.json"
	MoonModFile     = "moon.mod.json"
	CargoTomlFile   = "Cargo.toml"
)

// Paths under the root that never hold the project's own manifest.
var ignoredPatterns = []string{
	"{target,node_modules,dist,build,out,vendor}/**",
	"tests/fixtures/**",
}

type Manifests struct {
	PackageJSON    string
	MoonMod        string
	CargoToml      string
	PackageJSONAll []string
	MoonModAll     []string
	CargoTomlAll   []string
}

// DetectManifests walks root up to maxDepth levels and picks, per manifest
// type, the file closest to dir.
func DetectManifests(root string, dir string, maxDepth int) (Manifests, error) {
	var m Manifests

	fileListQueue := make(chan *gocodewalker.File, 100)
	walker := gocodewalker.NewFileWalker(root, fileListQueue)
	walker.IncludeHidden = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error, 1)
	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	for f := range fileListQueue {
		rel, err := filepath.Rel(root, f.Location)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if depth(rel) > maxDepth || isIgnored(rel) {
			continue
		}
		switch f.Filename {
		case PackageJSONFile:
			m.PackageJSONAll = append(m.PackageJSONAll, f.Location)
		case MoonModFile:
			m.MoonModAll = append(m.MoonModAll, f.Location)
		case CargoTomlFile:
			m.CargoTomlAll = append(m.CargoTomlAll, f.Location)
		}
	}

	if err := <-errChan; err != nil {
		return m, fmt.Errorf("error walking project: %w", err)
	}

	m.PackageJSON = closest(dir, m.PackageJSONAll)
	m.MoonMod = closest(dir, m.MoonModAll)
	m.CargoToml = closest(dir, m.CargoTomlAll)
	return m, nil
}

func depth(rel string) int {
	return strings.Count(rel, "/") + 1
}

func isIgnored(rel string) bool {
	for _, pattern := range ignoredPatterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// closest picks the path nearest to dir, breaking ties by path order.
func closest(dir string, paths []string) string {
	best := ""
	bestDistance := -1
	for _, path := range paths {
		d := distance(dir, filepath.Dir(path))
		if bestDistance < 0 || d < bestDistance || (d == bestDistance && path < best) {
			best = path
			bestDistance = d
		}
	}
	return best
}

// distance counts the directory steps between two directories.
func distance(from string, to string) int {
	fromParts := splitPath(from)
	toParts := splitPath(to)
	common := 0
	for common < len(fromParts) && common < len(toParts) && fromParts[common] == toParts[common] {
		common++
	}
	return (len(fromParts) - common) + (len(toParts) - common)
}

func splitPath(p string) []string {
	p = filepath.ToSlash(filepath.Clean(p))
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			out = append(out, part)
		}
	}
	return out
}
