package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f4ah6o/bdg/internal/app"
	"github.com/urfave/cli/v2"
)

const exitPending = 2

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func ignoreError[V any, E error](res V, _ E) V {
	return res
}

var (
	stdin      io.Reader = os.Stdin
	stdinPiped           = isStdinPiped
)

func isStdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// pipedBadgeLines returns the non-empty lines piped into bdg, if any.
func pipedBadgeLines() ([]string, error) {
	if !stdinPiped() {
		return nil, nil
	}
	scanner := bufio.NewScanner(stdin)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from stdin: %w", err)
	}
	return lines, nil
}

type buffers struct {
	warning *bytes.Buffer
	info    *bytes.Buffer
}

// flush writes buffered warnings, and debug output when verbose, to w.
func (b buffers) flush(w io.Writer, verbose bool) {
	if _, err := b.warning.WriteTo(w); err != nil {
		_, _ = fmt.Fprintf(w, "Error writing warning buffer: %v\n", err)
	}
	if verbose {
		if _, err := b.info.WriteTo(w); err != nil {
			_, _ = fmt.Fprintf(w, "Error writing info buffer: %v\n", err)
		}
	}
}

func newApp(cCtx *cli.Context, out io.Writer, bufs buffers) (*app.App, error) {
	cfg := app.Config{
		Dir:           cCtx.String("dir"),
		Token:         getEnv("GITHUB_TOKEN", getEnv("GH_TOKEN", "")),
		DryRun:        cCtx.Bool("dry-run"),
		JSON:          cCtx.Bool("json"),
		Verbose:       cCtx.Bool("verbose"),
		Quiet:         cCtx.Bool("quiet"),
		Output:        out,
		InfoBuffer:    bufs.info,
		WarningBuffer: bufs.warning,
	}
	if cCtx.IsSet("allow-yy-calver") {
		allow := cCtx.Bool("allow-yy-calver")
		cfg.AllowYYCalver = &allow
	}
	return app.New(cfg)
}

func finish(result *app.Result) error {
	if result.Pending() {
		return cli.Exit("", exitPending)
	}
	return nil
}

func dryRunFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Print the README diff instead of writing it (exit code 2 when changes are pending)",
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Machine readable output",
	}
}

func newCLI(out io.Writer, bufs buffers) *cli.App {
	// -v is --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Print version",
	}
	return &cli.App{
		Name:    "bdg",
		Writer:  out,
		Usage:   "Manage the badge block of a project README",
		Version: "v0.1.0.dev",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Value:   getEnv("BDG_DIR", "."),
				Usage:   "Directory inside the project",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   ignoreError(parseBool(getEnv("BDG_VERBOSE", "0"))),
				Usage:   "Verbose output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress warnings",
			},
			&cli.BoolFlag{
				Name:  "allow-yy-calver",
				Usage: "Accept two-digit calendar years (overrides .bdg.toml)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:        "add",
				Aliases:     []string{"a"},
				Usage:       "Add badges to the README",
				UsageText:   "bdg add [options] < extra-badges.md",
				Description: "Detect badges for the project and write them into the managed block. Badge lines piped on stdin are added as well.",
				Flags: []cli.Flag{
					dryRunFlag(),
					jsonFlag(),
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Install every detected badge instead of the recommended set",
					},
					&cli.StringSliceFlag{
						Name:  "only",
						Usage: "Only badges of these categories (ci, version, license, release, docs, downloads)",
					},
				},
				Action: func(cCtx *cli.Context) error {
					extra, err := pipedBadgeLines()
					if err != nil {
						return err
					}
					a, err := newApp(cCtx, out, bufs)
					if err != nil {
						return err
					}
					result, err := a.Add(app.AddOptions{
						Yes:   cCtx.Bool("yes"),
						Only:  cCtx.StringSlice("only"),
						Extra: extra,
					})
					if err != nil {
						return err
					}
					return finish(result)
				},
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Show the README badge block and project details",
				Flags:   []cli.Flag{jsonFlag()},
				Action: func(cCtx *cli.Context) error {
					a, err := newApp(cCtx, out, bufs)
					if err != nil {
						return err
					}
					return a.List()
				},
			},
			{
				Name:        "remove",
				Aliases:     []string{"rm"},
				Usage:       "Remove badges from the README",
				UsageText:   "bdg remove [--all | --id ID... | --kind KIND...] [--strict]",
				Description: "Remove badges by id or kind. Removing every badge removes the managed block.",
				Flags: []cli.Flag{
					dryRunFlag(),
					jsonFlag(),
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Remove the whole managed block",
					},
					&cli.StringSliceFlag{
						Name:  "id",
						Usage: "Badge ids to remove, as printed by bdg list --json",
					},
					&cli.StringSliceFlag{
						Name:  "kind",
						Usage: "Badge kinds to remove",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "Fail when none of the given ids is found",
					},
				},
				Action: func(cCtx *cli.Context) error {
					a, err := newApp(cCtx, out, bufs)
					if err != nil {
						return err
					}
					result, err := a.Remove(app.RemoveOptions{
						All:    cCtx.Bool("all"),
						IDs:    cCtx.StringSlice("id"),
						Kinds:  cCtx.StringSlice("kind"),
						Strict: cCtx.Bool("strict"),
					})
					if err != nil {
						return err
					}
					return finish(result)
				},
			},
		},
		// exit codes are handled by run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true, nil
	case "0", "false", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	bufs := buffers{warning: &bytes.Buffer{}, info: &bytes.Buffer{}}
	verbose := false
	c := newCLI(stdout, bufs)
	c.Before = func(cCtx *cli.Context) error {
		verbose = cCtx.Bool("verbose")
		return nil
	}

	err := c.Run(args)
	bufs.flush(stderr, verbose)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
