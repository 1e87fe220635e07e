package app

import (
	"fmt"

	"github.com/f4ah6o/bdg/internal/git"
	"github.com/f4ah6o/bdg/internal/manifest"
	"github.com/f4ah6o/bdg/internal/workflows"
	"github.com/f4ah6o/bdg/pkg/badges"
	f "github.com/f4ah6o/bdg/pkg/functional"
	"github.com/f4ah6o/bdg/pkg/readme"
)

type AddOptions struct {
	// Yes installs every candidate instead of the recommended set.
	Yes bool
	// Only restricts candidates to these categories.
	Only []string
	// Extra holds badge markup lines supplied by the caller.
	Extra []string
}

// Add writes the selected badges into the managed block, creating the
// block when the README has none.
func (a *App) Add(opts AddOptions) (*Result, error) {
	candidates := badges.FilterByCategory(a.candidates(), opts.Only)
	selected := candidates
	if !opts.Yes && len(opts.Only) == 0 {
		selected = badges.Recommended(candidates)
	}
	lines := badges.Markdown(selected)
	lines = append(lines, a.extraLines(opts.Extra)...)
	lines = f.RemoveDuplicates(lines)

	path := a.readmePath()
	if len(lines) == 0 {
		a.printWarn("No badges selected", "readme", path)
		return &Result{Path: path, DryRun: a.config.DryRun}, nil
	}
	for _, b := range selected {
		a.printDebug("Selected badge", "badge", b.String())
	}

	original, err := readme.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	updated, err := readme.Rewrite(readme.Ensure(original), lines)
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", path, err)
	}
	return a.finish(path, original, updated, newDryRunPayload())
}

// candidates lists every badge the project qualifies for, registry badges
// first.
func (a *App) candidates() []badges.Badge {
	var list []badges.Badge
	m := a.project.Manifests
	opts := a.versionOptions()

	if m.PackageJSON != "" {
		if pkg, err := manifest.ReadPackageJSON(m.PackageJSON); err != nil {
			a.printWarn("Skipping package.json", "err", err)
		} else if pkg.Name != "" {
			a.printDebug("npm package", "name", pkg.Name, "version_format", classify(pkg.Version, opts))
			list = append(list, badges.ForNpm(pkg.Name))
		}
	}
	if m.CargoToml != "" {
		if cargo, err := manifest.ReadCargoToml(m.CargoToml); err != nil {
			a.printWarn("Skipping Cargo.toml", "err", err)
		} else if cargo.Package != nil && cargo.Package.Name != "" {
			a.printDebug("crate", "name", cargo.Package.Name, "version_format", classify(cargo.Package.Version, opts))
			list = append(list, badges.ForCrates(cargo.Package.Name))
		}
	}
	if m.MoonMod != "" {
		if mod, err := manifest.ReadMoonMod(m.MoonMod); err != nil {
			a.printWarn("Skipping moon.mod.json", "err", err)
		} else if mod.Name != "" {
			a.printDebug("moonbit module", "name", mod.Name, "version_format", classify(mod.Version, opts))
			list = append(list, badges.ForMoonbit(mod.Name))
		}
	}

	owner, repo, ok := a.ownerRepo()
	if !ok {
		a.printDebug("No GitHub remote, skipping license and CI badges")
		return list
	}
	list = append(list, badges.ForLicense(owner, repo))
	for _, wf := range workflows.Detect(a.project.Root) {
		list = append(list, badges.ForWorkflow(owner, repo, wf.File))
	}
	return list
}

// ownerRepo prefers the git remote and falls back to the repository URL
// of package.json, then Cargo.toml.
func (a *App) ownerRepo() (string, string, bool) {
	if owner, repo, ok := a.project.OwnerRepo(); ok {
		return owner, repo, true
	}
	m := a.project.Manifests
	var urls []string
	if m.PackageJSON != "" {
		if pkg, err := manifest.ReadPackageJSON(m.PackageJSON); err == nil {
			urls = append(urls, pkg.Repository.URL)
		}
	}
	if m.CargoToml != "" {
		if cargo, err := manifest.ReadCargoToml(m.CargoToml); err == nil && cargo.Package != nil {
			urls = append(urls, cargo.Package.Repository)
		}
	}
	for _, url := range urls {
		if url == "" {
			continue
		}
		if owner, repo := git.OwnerRepo(url); owner != "" {
			a.printDebug("Using manifest repository", "url", url)
			return owner, repo, true
		}
	}
	return "", "", false
}

// extraLines keeps the caller supplied lines that parse as badges.
func (a *App) extraLines(extra []string) []string {
	out := make([]string, 0, len(extra))
	for _, line := range extra {
		p, ok := badges.ParseOptional(line)
		if !ok {
			a.printWarn("Ignoring line that is not a badge", "line", line)
			continue
		}
		out = append(out, p.Raw)
	}
	return out
}
