package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

// isStdinPiped checks if stdin is being piped to the program
func isStdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// scanLines returns the non-empty, trimmed lines of r
func scanLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := []string{}
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

// inputs prefers positional arguments and falls back to piped stdin.
func inputs(cCtx *cli.Context, what string) ([]string, error) {
	if cCtx.NArg() > 0 {
		return cCtx.Args().Slice(), nil
	}
	if !isStdinPiped() {
		return nil, fmt.Errorf("at least one %s is required", what)
	}
	lines, err := scanLines(os.Stdin)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no %s read from stdin", what)
	}
	return lines, nil
}
