package workflows

import (
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const Dir = ".github/workflows"

const pattern = Dir + "/*.{yml,yaml}"

type Workflow struct {
	// Name is the file name without its extension.
	Name string `json:"name"`
	// File is the file name inside the workflows directory.
	File string `json:"file"`
}

// Detect lists the workflow files of the repository at root, sorted by
// file name. A missing or unreadable directory yields no workflows.
func Detect(root string) []Workflow {
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return []Workflow{}
	}
	slices.Sort(matches)
	out := make([]Workflow, 0, len(matches))
	for _, m := range matches {
		file := path.Base(m)
		out = append(out, Workflow{
			Name: strings.TrimSuffix(file, path.Ext(file)),
			File: file,
		})
	}
	return out
}
