package app

import (
	"encoding/json"

	"github.com/f4ah6o/bdg/internal/git"
	gh "github.com/f4ah6o/bdg/internal/github"
	"github.com/f4ah6o/bdg/pkg/badges"
	"github.com/f4ah6o/bdg/pkg/version"
)

const (
	DryRunSchema = "bdg.dryrun/v1"
	ListSchema   = "bdg.list/v1"
)

const (
	WarningIDNotFound      = "ID_NOT_FOUND"
	WarningManifestInvalid = "MANIFEST_INVALID"
)

type Warning struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

type DryRunPayload struct {
	Schema       string         `json:"schema"`
	Path         string         `json:"path"`
	Diff         string         `json:"diff"`
	RemovedIDs   []string       `json:"removed_ids,omitempty"`
	MissingIDs   []string       `json:"missing_ids,omitempty"`
	RemovedKinds map[string]int `json:"removed_kinds,omitempty"`
	Warnings     []Warning      `json:"warnings"`
}

func newDryRunPayload() *DryRunPayload {
	return &DryRunPayload{Schema: DryRunSchema, Warnings: []Warning{}}
}

type ListPayload struct {
	Schema      string                     `json:"schema"`
	Repo        *git.Context               `json:"repo"`
	Config      ConfigPayload              `json:"config"`
	Readme      ReadmePayload              `json:"readme"`
	Manifests   map[string]ManifestPayload `json:"manifests"`
	CI          CIPayload                  `json:"ci"`
	ReadmeBlock ReadmeBlockPayload         `json:"readme_block"`
	Warnings    []Warning                  `json:"warnings"`
}

type ConfigPayload struct {
	Path    string          `json:"path,omitempty"`
	Version version.Options `json:"version"`
}

type ReadmePayload struct {
	Path            string         `json:"path"`
	Newline         string         `json:"newline"`
	TrailingNewline bool           `json:"trailing_newline"`
	Markers         MarkersPayload `json:"markers"`
}

type MarkersPayload struct {
	Present bool `json:"present"`
	Count   int  `json:"count"`
}

type ManifestPayload struct {
	Path       string        `json:"path"`
	Name       string        `json:"name,omitempty"`
	Version    string        `json:"version,omitempty"`
	License    string        `json:"license,omitempty"`
	Repository string        `json:"repository,omitempty"`
	Readme     string        `json:"readme,omitempty"`
	Info       *version.Info `json:"version_info,omitempty"`
}

type CIPayload struct {
	WorkflowsDir string            `json:"workflows_dir"`
	Workflows    []WorkflowPayload `json:"workflows"`
}

type WorkflowPayload struct {
	File         string       `json:"file"`
	Name         string       `json:"name"`
	Badge        BadgePayload `json:"badge"`
	LatestStatus gh.RunStatus `json:"latest_status"`
}

type BadgePayload struct {
	Kind  badges.Kind `json:"kind"`
	Image string      `json:"image"`
	Link  string      `json:"link"`
}

type ReadmeBlockPayload struct {
	Raw    string          `json:"raw"`
	Badges []badges.Parsed `json:"badges"`
}

func (a *App) writeJSON(v interface{}) error {
	enc := json.NewEncoder(a.config.Output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
