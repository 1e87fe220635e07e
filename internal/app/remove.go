package app

import (
	"fmt"
	"strings"

	f "github.com/f4ah6o/bdg/pkg/functional"
	"github.com/f4ah6o/bdg/pkg/readme"
)

type RemoveOptions struct {
	All    bool
	IDs    []string
	Kinds  []string
	Strict bool
}

func (o RemoveOptions) validate() error {
	hasSelector := len(o.IDs) > 0 || len(o.Kinds) > 0
	if o.All && hasSelector {
		return ErrAllWithSelector
	}
	if !o.All && !hasSelector {
		return ErrNoSelector
	}
	return nil
}

// Remove drops badges from the managed block. Removing every line removes
// the block itself.
func (a *App) Remove(opts RemoveOptions) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	path := a.readmePath()
	original, err := readme.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	// a missing, duplicated or blank block has nothing to remove
	existing := readme.ManagedLines(original)
	if len(existing) == 0 {
		a.printWarn("No badges in the marker block, nothing to remove", "readme", path)
		return &Result{Path: path, DryRun: a.config.DryRun}, nil
	}

	payload := newDryRunPayload()
	var removal readme.Removal
	if opts.All {
		removal = readme.Removal{Removed: len(existing), Remaining: []string{}, RemovedKinds: map[string]int{}}
	} else {
		removal, err = readme.RemoveByIDKind(original, opts.IDs, opts.Kinds, opts.Strict)
		if err != nil {
			return nil, err
		}
		payload.RemovedIDs = removal.RemovedIDs
		payload.MissingIDs = removal.MissingIDs
		payload.RemovedKinds = removal.RemovedKinds
		for _, id := range removal.MissingIDs {
			a.printWarn("Badge id not found", "id", id)
			payload.Warnings = append(payload.Warnings, Warning{
				Code:    WarningIDNotFound,
				Message: "badge id not found in readme_block",
				Meta:    map[string]string{"id": id},
			})
		}
	}

	var updated string
	if opts.All || len(nonBlank(removal.Remaining)) == 0 {
		updated, err = readme.RemoveBlock(original)
	} else {
		updated, err = readme.RewriteLines(original, removal.Remaining)
	}
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", path, err)
	}

	if !a.config.JSON {
		a.printSummary(path, removal)
	}
	return a.finish(path, original, updated, payload)
}

func (a *App) printSummary(path string, removal readme.Removal) {
	a.printf("Removed %d badges from %s\n", removal.Removed, path)
	if len(removal.RemovedIDs) > 0 {
		a.printf("- ids: %s\n", strings.Join(removal.RemovedIDs, ", "))
	}
	if len(removal.RemovedKinds) > 0 {
		kinds := f.Map(f.SortedKeys(removal.RemovedKinds), func(k string) string {
			return fmt.Sprintf("%s=%d", k, removal.RemovedKinds[k])
		})
		a.printf("- kinds: %s\n", strings.Join(kinds, ", "))
	}
	a.printf("Remaining: %d\n", len(nonBlank(removal.Remaining)))
}

func nonBlank(lines []string) []string {
	return f.Filtered(lines, func(l string) bool { return strings.TrimSpace(l) != "" })
}
