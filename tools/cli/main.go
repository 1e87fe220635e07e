package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f4ah6o/bdg/pkg/badges"
	"github.com/f4ah6o/bdg/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "Print version",
	}
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Println(cCtx.App.Version)
	}
	defaults := version.DefaultOptions()
	app := &cli.App{
		Name:    "bdg-inspect",
		Usage:   "Inspect how bdg reads badge lines and version strings",
		Version: "v0.1.0.dev",
		Commands: []*cli.Command{
			{
				Name:        "parse",
				Aliases:     []string{"p"},
				Usage:       "Parse one or more badge lines",
				UsageText:   "bdg-inspect parse [options] <line1> [line2]...",
				Description: "Parse badge markup lines into id, kind, label and URLs. Lines are read from stdin when none are given.",
				Flags:       []cli.Flag{formatFlag()},
				Action: func(cCtx *cli.Context) error {
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					lines, err := inputs(cCtx, "badge line")
					if err != nil {
						return err
					}
					return inspectBadges(os.Stdout, lines, format)
				},
			},
			{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "Classify one or more version strings",
				UsageText:   "bdg-inspect version [options] <version1> [version2]...",
				Description: "Classify version strings as semver, calver or unknown. Versions are read from stdin when none are given.",
				Flags: []cli.Flag{
					formatFlag(),
					&cli.BoolFlag{
						Name:  "allow-yy-calver",
						Usage: "Accept two-digit calendar years (YY.MM)",
					},
					&cli.IntFlag{
						Name:  "year-min",
						Value: defaults.YearMin,
						Usage: "Smallest accepted four-digit calendar year",
					},
					&cli.IntFlag{
						Name:  "year-max",
						Value: defaults.YearMax,
						Usage: "Largest accepted four-digit calendar year",
					},
				},
				Action: func(cCtx *cli.Context) error {
					format, err := validateFormat(cCtx.String("format"))
					if err != nil {
						return err
					}
					if cCtx.Int("year-min") > cCtx.Int("year-max") {
						return fmt.Errorf("year-min %d is greater than year-max %d", cCtx.Int("year-min"), cCtx.Int("year-max"))
					}
					values, err := inputs(cCtx, "version")
					if err != nil {
						return err
					}
					opts := version.Options{
						AllowYYCalver: cCtx.Bool("allow-yy-calver"),
						YearMin:       cCtx.Int("year-min"),
						YearMax:       cCtx.Int("year-max"),
					}
					return inspectVersions(os.Stdout, values, opts, format)
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func inspectBadges(w io.Writer, lines []string, format OutputFormat) error {
	parsed := make([]badges.Parsed, 0, len(lines))
	for _, line := range lines {
		parsed = append(parsed, badges.Parse(line))
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, parsed)
	case FormatOneLine:
		for _, p := range parsed {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Kind, p.Raw)
		}
	default:
		for i, p := range parsed {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			printBadge(w, p)
		}
	}
	return nil
}

func printBadge(w io.Writer, p badges.Parsed) {
	_, _ = fmt.Fprintln(w, p.Raw)
	_, _ = fmt.Fprintf(w, "  id: %s\n", p.ID)
	_, _ = fmt.Fprintf(w, "  kind: %s\n", p.Kind)
	if p.Kind == badges.KindUnknown && p.Image == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "  label: %s\n", p.Label)
	_, _ = fmt.Fprintf(w, "  image: %s\n", p.Image)
	if p.Link != nil {
		_, _ = fmt.Fprintf(w, "  link: %s\n", *p.Link)
	}
}

func inspectVersions(w io.Writer, values []string, opts version.Options, format OutputFormat) error {
	infos := make([]version.Info, 0, len(values))
	for _, v := range values {
		infos = append(infos, version.Classify(v, opts))
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, infos)
	case FormatOneLine:
		for _, info := range infos {
			_, _ = fmt.Fprintln(w, strings.Join(versionFields(info), " "))
		}
	default:
		for i, info := range infos {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			printVersion(w, info)
		}
	}
	return nil
}

func versionFields(info version.Info) []string {
	fields := []string{info.Raw, string(info.Format)}
	if info.CalverScheme != nil {
		fields = append(fields, *info.CalverScheme)
	}
	if info.Modifier != nil {
		fields = append(fields, "modifier="+*info.Modifier)
	}
	return fields
}

func printVersion(w io.Writer, info version.Info) {
	_, _ = fmt.Fprintln(w, info.Raw)
	_, _ = fmt.Fprintf(w, "  format: %s\n", info.Format)
	if info.CalverScheme != nil {
		_, _ = fmt.Fprintf(w, "  scheme: %s\n", *info.CalverScheme)
	}
	if p := info.CalverParts; p != nil {
		date := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
		if p.Day != nil {
			date += fmt.Sprintf("-%02d", *p.Day)
		}
		_, _ = fmt.Fprintf(w, "  date: %s\n", date)
		if p.Micro != nil {
			_, _ = fmt.Fprintf(w, "  micro: %d\n", *p.Micro)
		}
	}
	if p := info.SemverParts; p != nil {
		_, _ = fmt.Fprintf(w, "  core: %d.%d.%d\n", p.Major, p.Minor, p.Patch)
		if p.Pre != nil {
			_, _ = fmt.Fprintf(w, "  pre: %s\n", *p.Pre)
		}
		if p.Build != nil {
			_, _ = fmt.Fprintf(w, "  build: %s\n", *p.Build)
		}
	}
	if info.Modifier != nil {
		_, _ = fmt.Fprintf(w, "  modifier: %s\n", *info.Modifier)
	}
}
