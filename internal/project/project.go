package project

import (
	"path/filepath"

	"github.com/f4ah6o/bdg/internal/git"
)

type Ecosystem string

const (
	EcosystemNode    Ecosystem = "node"
	EcosystemMoonBit Ecosystem = "moonbit"
	EcosystemRust    Ecosystem = "rust"
)

const DefaultMaxDepth = 3

// Context is everything the commands need to know about the project the
// user is standing in.
type Context struct {
	Root      string
	Dir       string
	Ecosystem Ecosystem
	Manifests Manifests
	Git       *git.Context
}

func (c *Context) HasMoonbit() bool {
	return c.Manifests.MoonMod != ""
}

func (c *Context) OwnerRepo() (string, string, bool) {
	if c.Git == nil || !c.Git.HasOwnerRepo() {
		return "", "", false
	}
	return c.Git.Owner, c.Git.Repo, true
}

// Build resolves the project root for dir (the git top level, or dir
// itself outside a repository) and discovers its manifests.
func Build(dir string) (*Context, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	ctx := &Context{Root: dir, Dir: dir}
	if root, err := git.Root(dir); err == nil {
		ctx.Root = root
		gitCtx := git.ReadContext(root)
		ctx.Git = &gitCtx
	}

	manifests, err := DetectManifests(ctx.Root, dir, DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	ctx.Manifests = manifests
	ctx.Ecosystem = DetectEcosystem(manifests)
	return ctx, nil
}

// DetectEcosystem prefers node, then moonbit, then rust.
func DetectEcosystem(m Manifests) Ecosystem {
	switch {
	case m.PackageJSON != "":
		return EcosystemNode
	case m.MoonMod != "":
		return EcosystemMoonBit
	case m.CargoToml != "":
		return EcosystemRust
	}
	return ""
}
