package badges

import (
	"fmt"
	"strings"

	f "github.com/f4ah6o/bdg/pkg/functional"
)

// Category groups generated badges for filtering and preselection.
type Category string

const (
	CategoryVersion   Category = "version"
	CategoryCI        Category = "ci"
	CategoryLicense   Category = "license"
	CategoryRelease   Category = "release"
	CategoryDocs      Category = "docs"
	CategoryDownloads Category = "downloads"
)

var Categories = []Category{
	CategoryCI,
	CategoryVersion,
	CategoryLicense,
	CategoryRelease,
	CategoryDocs,
	CategoryDownloads,
}

// Badge is a badge the tool can generate.
type Badge struct {
	Category Category
	Label    string
	ImageURL string
	LinkURL  string
}

func (b Badge) Markdown() string {
	if b.LinkURL == "" {
		return fmt.Sprintf("![%s](%s)", b.Label, b.ImageURL)
	}
	return fmt.Sprintf("[![%s](%s)](%s)", b.Label, b.ImageURL, b.LinkURL)
}

func (b Badge) String() string {
	return fmt.Sprintf("%s %s", b.Category, b.Label)
}

func ForNpm(pkg string) Badge {
	return Badge{
		Category: CategoryVersion,
		Label:    "npm",
		ImageURL: fmt.Sprintf("https://img.shields.io/npm/v/%s.svg", pkg),
		LinkURL:  fmt.Sprintf("https://www.npmjs.com/package/%s", pkg),
	}
}

func ForCrates(name string) Badge {
	return Badge{
		Category: CategoryVersion,
		Label:    "crates.io",
		ImageURL: fmt.Sprintf("https://img.shields.io/crates/v/%s.svg", name),
		LinkURL:  fmt.Sprintf("https://crates.io/crates/%s", name),
	}
}

func ForMoonbit(module string) Badge {
	return Badge{
		Category: CategoryVersion,
		Label:    "moonbit",
		ImageURL: fmt.Sprintf("https://img.shields.io/badge/moonbit-%s-informational", module),
	}
}

func ForLicense(owner, repo string) Badge {
	return Badge{
		Category: CategoryLicense,
		Label:    "license",
		ImageURL: fmt.Sprintf("https://img.shields.io/github/license/%s/%s.svg", owner, repo),
		LinkURL:  fmt.Sprintf("https://github.com/%s/%s", owner, repo),
	}
}

// ForWorkflow takes the workflow file name including its extension.
func ForWorkflow(owner, repo, file string) Badge {
	return Badge{
		Category: CategoryCI,
		Label:    "CI",
		ImageURL: fmt.Sprintf("https://github.com/%s/%s/actions/workflows/%s/badge.svg", owner, repo, file),
		LinkURL:  fmt.Sprintf("https://github.com/%s/%s/actions/workflows/%s", owner, repo, file),
	}
}

// FilterByCategory keeps badges whose category is named in only. Matching
// is case-insensitive and an empty filter keeps everything.
func FilterByCategory(list []Badge, only []string) []Badge {
	if len(only) == 0 {
		return list
	}
	wanted := f.NewSet[Category]()
	for _, o := range only {
		wanted.Add(Category(strings.ToLower(strings.TrimSpace(o))))
	}
	return f.Filtered(list, func(b Badge) bool {
		return wanted.Contains(b.Category)
	})
}

// Recommended picks the default selection: the first CI badge, every
// registry version badge and the first license badge, in list order.
func Recommended(list []Badge) []Badge {
	firstCI, hasCI := f.FindIndex(list, func(b Badge) bool { return b.Category == CategoryCI })
	firstLicense, hasLicense := f.FindIndex(list, func(b Badge) bool { return b.Category == CategoryLicense })

	selected := make([]Badge, 0, len(list))
	for i, b := range list {
		switch {
		case hasCI && i == firstCI:
			selected = append(selected, b)
		case hasLicense && i == firstLicense:
			selected = append(selected, b)
		case b.Category == CategoryVersion && isRegistryLabel(b.Label):
			selected = append(selected, b)
		}
	}
	return selected
}

func isRegistryLabel(label string) bool {
	return strings.Contains(label, "crates") || strings.Contains(label, "npm") || strings.Contains(label, "moonbit")
}

func Markdown(list []Badge) []string {
	return f.Map(list, func(b Badge) string { return b.Markdown() })
}
