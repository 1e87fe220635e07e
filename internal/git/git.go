package git

import (
	"errors"
	"path/filepath"
	"strings"
)

var ErrNotRepository = errors.New("not a git repository")

// Context describes the repository a README lives in.
type Context struct {
	Root          string `json:"git_root"`
	Remote        string `json:"remote,omitempty"`
	Owner         string `json:"owner,omitempty"`
	Repo          string `json:"name,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty"`
}

func (c Context) HasOwnerRepo() bool {
	return c.Owner != "" && c.Repo != ""
}

// Root returns the top level of the work tree containing dir.
func Root(dir string) (string, error) {
	return root(newRealGitExecutor(dir))
}

func root(executor gitCommandExecutor) (string, error) {
	output, err := executor.execute("git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.Join(ErrNotRepository, err)
	}
	text := strings.TrimSpace(string(output))
	if text == "" {
		return "", ErrNotRepository
	}
	return filepath.Clean(text), nil
}

// ReadContext collects remote and branch details for the repository at
// root. Missing pieces are left empty.
func ReadContext(root string) Context {
	return readContext(root, newRealGitExecutor(root))
}

func readContext(root string, executor gitCommandExecutor) Context {
	ctx := Context{Root: root}
	if output, err := executor.execute("git", "remote", "get-url", "origin"); err == nil {
		ctx.Remote = strings.TrimSpace(string(output))
	}
	ctx.Owner, ctx.Repo = OwnerRepo(ctx.Remote)
	if output, err := executor.execute("git", "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		ref := strings.TrimSpace(string(output))
		ctx.DefaultBranch = ref[strings.LastIndex(ref, "/")+1:]
	}
	return ctx
}

// OwnerRepo extracts owner and repository names from a remote or
// repository URL such as git@github.com:o/r.git or git+https://github.com/o/r.
func OwnerRepo(url string) (string, string) {
	cleaned := strings.TrimSpace(url)
	for strings.HasSuffix(cleaned, ".git") {
		cleaned = strings.TrimSuffix(cleaned, ".git")
	}
	cleaned = strings.ReplaceAll(cleaned, "git+", "")
	cleaned = strings.ReplaceAll(cleaned, "git://", "https://")
	cleaned = strings.ReplaceAll(cleaned, ":", "/")
	parts := strings.Split(cleaned, "/")
	if len(parts) < 2 {
		return "", ""
	}
	owner, repo := parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", ""
	}
	return owner, repo
}
