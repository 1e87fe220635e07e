package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/f4ah6o/bdg/internal/manifest"
	"github.com/f4ah6o/bdg/internal/workflows"
	"github.com/f4ah6o/bdg/pkg/badges"
	"github.com/f4ah6o/bdg/pkg/readme"
	"github.com/f4ah6o/bdg/pkg/version"
)

func classify(raw string, opts version.Options) version.Format {
	if raw == "" {
		return ""
	}
	return version.Classify(raw, opts).Format
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// List reports the README, its managed block and the project's CI.
func (a *App) List() error {
	path := a.readmePath()
	content, err := readme.Load(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if a.config.JSON {
		return a.writeJSON(a.listPayload(path, content))
	}

	newline, trailing := readme.NewlineInfo(content)
	_, blockErr := readme.BlockLines(content)
	lines := readme.ManagedLines(content)

	a.printf("README: %s (%s, trailing newline: %s)\n", path, newline, yesNo(trailing))
	if blockErr != nil {
		a.printf("Marker block: missing\n")
	} else {
		a.printf("Marker block: present\n")
	}
	a.printf("Badges: %d\n", len(lines))
	if a.config.Token != "" {
		for _, wf := range workflows.Detect(a.project.Root) {
			status := a.latestRun(wf.File)
			last := status.Conclusion
			if !status.OK {
				last = status.Reason
			}
			a.printf("- CI %s last: %s\n", wf.File, last)
		}
	}
	for _, line := range lines {
		a.printf("%s\n", line)
	}
	return nil
}

func (a *App) listPayload(path string, content string) *ListPayload {
	newline, trailing := readme.NewlineInfo(content)
	count := readme.MarkerCount(content)
	_, blockErr := readme.BlockLines(content)
	opts := a.versionOptions()

	payload := &ListPayload{
		Schema: ListSchema,
		Repo:   a.project.Git,
		Config: ConfigPayload{Path: a.Conf.Path, Version: opts},
		Readme: ReadmePayload{
			Path:            path,
			Newline:         newline,
			TrailingNewline: trailing,
			Markers:         MarkersPayload{Present: blockErr == nil, Count: count},
		},
		Manifests: map[string]ManifestPayload{},
		CI:        CIPayload{WorkflowsDir: filepath.Join(a.project.Root, workflows.Dir), Workflows: []WorkflowPayload{}},
		ReadmeBlock: ReadmeBlockPayload{
			Raw:    strings.Join(readme.ManagedLines(content), "\n"),
			Badges: readme.BlockBadges(content),
		},
		Warnings: []Warning{},
	}

	m := a.project.Manifests
	manifests := []struct {
		key  string
		path string
		read func(string) (ManifestPayload, error)
	}{
		{"package_json", m.PackageJSON, readPackageJSON},
		{"moon_mod", m.MoonMod, readMoonMod},
		{"cargo_toml", m.CargoToml, readCargoToml},
	}
	for _, mf := range manifests {
		if mf.path == "" {
			continue
		}
		entry, err := mf.read(mf.path)
		if err != nil {
			payload.Warnings = append(payload.Warnings, Warning{
				Code:    WarningManifestInvalid,
				Message: err.Error(),
				Meta:    map[string]string{"path": mf.path},
			})
			continue
		}
		entry.Path = mf.path
		if entry.Version != "" {
			info := version.Classify(entry.Version, opts)
			entry.Info = &info
		}
		payload.Manifests[mf.key] = entry
	}

	owner, repo, hasRepo := a.ownerRepo()
	for _, wf := range workflows.Detect(a.project.Root) {
		entry := WorkflowPayload{File: wf.File, Name: wf.Name, LatestStatus: a.latestRun(wf.File)}
		if hasRepo {
			b := badges.ForWorkflow(owner, repo, wf.File)
			entry.Badge = BadgePayload{Kind: badges.KindGitHubActions, Image: b.ImageURL, Link: b.LinkURL}
		}
		payload.CI.Workflows = append(payload.CI.Workflows, entry)
	}
	return payload
}

func readPackageJSON(path string) (ManifestPayload, error) {
	pkg, err := manifest.ReadPackageJSON(path)
	if err != nil {
		return ManifestPayload{}, err
	}
	return ManifestPayload{
		Name:       pkg.Name,
		Version:    pkg.Version,
		License:    pkg.License,
		Repository: pkg.Repository.URL,
	}, nil
}

func readMoonMod(path string) (ManifestPayload, error) {
	mod, err := manifest.ReadMoonMod(path)
	if err != nil {
		return ManifestPayload{}, err
	}
	return ManifestPayload{Name: mod.Name, Version: mod.Version, Readme: mod.Readme}, nil
}

func readCargoToml(path string) (ManifestPayload, error) {
	cargo, err := manifest.ReadCargoToml(path)
	if err != nil {
		return ManifestPayload{}, err
	}
	if cargo.Package == nil {
		return ManifestPayload{}, nil
	}
	return ManifestPayload{
		Name:       cargo.Package.Name,
		Version:    cargo.Package.Version,
		License:    cargo.Package.License,
		Repository: cargo.Package.Repository,
	}, nil
}
