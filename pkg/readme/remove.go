package readme

import (
	"fmt"
	"slices"
	"strings"

	"github.com/f4ah6o/bdg/pkg/badges"
	f "github.com/f4ah6o/bdg/pkg/functional"
)

// Removal describes the outcome of RemoveByIDKind.
type Removal struct {
	Remaining    []string
	Removed      int
	IDHits       int
	RemovedIDs   []string
	RemovedKinds map[string]int
	MissingIDs   []string
}

// RemoveByIDKind drops block lines whose badge id or kind was requested.
// Fenced lines are always kept. Lines that are not badge markup are keyed
// as unknown:<hash> with kind unknown, so they can still be targeted.
func RemoveByIDKind(content string, ids []string, kinds []string, strict bool) (Removal, error) {
	lines, err := BlockLines(content)
	if err != nil {
		return Removal{}, err
	}
	idSet := trimmedSet(ids)
	kindSet := trimmedSet(kinds)

	out := Removal{
		Remaining:    make([]string, 0, len(lines)),
		RemovedIDs:   []string{},
		RemovedKinds: map[string]int{},
		MissingIDs:   []string{},
	}
	fenceWalk(lines, func(_ int, line string, fenced bool) {
		if fenced {
			out.Remaining = append(out.Remaining, line)
			return
		}
		id, kind := classifyLine(line)
		byID := idSet.Contains(id)
		byKind := kindSet.Contains(kind)
		if !byID && !byKind {
			out.Remaining = append(out.Remaining, line)
			return
		}
		if byID {
			out.IDHits++
		}
		out.RemovedIDs = append(out.RemovedIDs, id)
		out.RemovedKinds[kind]++
		out.Removed++
	})

	for _, id := range idSet.Items() {
		if !slices.Contains(out.RemovedIDs, id) {
			out.MissingIDs = append(out.MissingIDs, id)
		}
	}
	slices.Sort(out.MissingIDs)

	if strict && len(idSet) > 0 && out.IDHits == 0 {
		return Removal{}, fmt.Errorf("%w: %s", ErrIDNotFound, strings.Join(out.MissingIDs, ", "))
	}
	return out, nil
}

func classifyLine(line string) (string, string) {
	if parsed, ok := badges.ParseOptional(line); ok {
		return parsed.ID, string(parsed.Kind)
	}
	return badges.UnknownID(line), string(badges.KindUnknown)
}

func trimmedSet(items []string) f.Set[string] {
	return f.SetOf(f.Map(items, strings.TrimSpace))
}
