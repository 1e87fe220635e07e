package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/f4ah6o/bdg/internal/config"
	"github.com/f4ah6o/bdg/internal/diff"
	gh "github.com/f4ah6o/bdg/internal/github"
	"github.com/f4ah6o/bdg/internal/project"
	"github.com/f4ah6o/bdg/pkg/readme"
	"github.com/f4ah6o/bdg/pkg/version"
)

var ErrNoSelector = errors.New("nothing to remove: pass --all, --id or --kind")

var ErrAllWithSelector = errors.New("--all cannot be combined with --id or --kind")

// Config holds the application configuration
type Config struct {
	Dir           string
	Token         string
	AllowYYCalver *bool
	DryRun        bool
	JSON          bool
	Verbose       bool
	Quiet         bool
	Output        io.Writer
	InfoBuffer    io.Writer
	WarningBuffer io.Writer
}

// App represents the application with its dependencies
type App struct {
	Conf    *config.Config
	config  *Config
	project *project.Context
	client  gh.Client
	info    *log.Logger
	warn    *log.Logger
}

// Result reports what a mutating command did to the README.
type Result struct {
	Path    string
	Diff    string
	Written bool
	DryRun  bool
}

// Pending is true for dry runs that would have changed the README.
func (r *Result) Pending() bool {
	return r.DryRun && r.Diff != ""
}

// New creates a new App instance for the project containing cfg.Dir.
func New(cfg Config) (*App, error) {
	ctx, err := project.Build(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("error detecting project: %w", err)
	}
	var client gh.Client
	if owner, repo, ok := ctx.OwnerRepo(); ok {
		client = gh.NewClient(owner, repo, cfg.Token)
	}
	return newApp(cfg, ctx, client), nil
}

func newApp(cfg Config, ctx *project.Context, client gh.Client) *App {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	if cfg.InfoBuffer == nil {
		cfg.InfoBuffer = io.Discard
	}
	if cfg.WarningBuffer == nil {
		cfg.WarningBuffer = io.Discard
	}
	a := &App{
		config:  &cfg,
		project: ctx,
		client:  client,
		info:    log.NewWithOptions(cfg.InfoBuffer, log.Options{Prefix: "bdg", Level: log.DebugLevel}),
		warn:    log.NewWithOptions(cfg.WarningBuffer, log.Options{Prefix: "bdg", Level: log.WarnLevel}),
	}
	if client != nil {
		client.SetWarningBuffer(cfg.WarningBuffer)
		if cfg.Verbose {
			client.SetInfoBuffer(cfg.InfoBuffer)
		}
	}

	conf, err := config.Discover(ctx.Dir, ctx.Root)
	if err != nil {
		a.printWarn("Error reading "+config.FileName+" - using default config", "err", err)
	}
	a.Conf = conf
	a.printDebug("Project", "root", ctx.Root, "ecosystem", ctx.Ecosystem)
	return a
}

func (a *App) printDebug(msg string, keyvals ...interface{}) {
	if a.config.Verbose {
		a.info.Debug(msg, keyvals...)
	}
}

func (a *App) printWarn(msg string, keyvals ...interface{}) {
	if !a.config.Quiet {
		a.warn.Warn(msg, keyvals...)
	}
}

func (a *App) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(a.config.Output, format, args...)
}

func (a *App) versionOptions() version.Options {
	return a.Conf.VersionOptions(a.config.AllowYYCalver)
}

func (a *App) readmePath() string {
	return readme.Resolve(a.project.Root, a.project.HasMoonbit())
}

func (a *App) latestRun(file string) gh.RunStatus {
	if a.client == nil {
		return gh.RunStatus{Source: "github", Reason: gh.ReasonRepoUnknown}
	}
	return a.client.LatestRun(context.Background(), file)
}

// finish prints or writes the outcome of an edit.
func (a *App) finish(path string, original string, updated string, payload *DryRunPayload) (*Result, error) {
	d, err := diff.Unified(filepath.Base(path), original, updated)
	if err != nil {
		return nil, fmt.Errorf("error rendering diff: %w", err)
	}
	result := &Result{Path: path, Diff: d, DryRun: a.config.DryRun}

	if a.config.DryRun {
		if a.config.JSON {
			payload.Path = path
			payload.Diff = d
			return result, a.writeJSON(payload)
		}
		a.printf("%s", d)
		return result, nil
	}

	if original == updated {
		a.printDebug("README unchanged", "path", path)
		return result, nil
	}
	if err := readme.WriteAtomic(path, updated); err != nil {
		return nil, fmt.Errorf("error writing %s: %w", path, err)
	}
	result.Written = true
	a.printDebug("Wrote README", "path", path)
	return result, nil
}
