package diff

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	godiff "github.com/sourcegraph/go-diff/diff"
)

const contextLines = 3

const noNewline = "\\ No newline at end of file\n"

type opKind byte

const (
	opEqual  opKind = ' '
	opDelete opKind = '-'
	opInsert opKind = '+'
)

type lineOp struct {
	kind opKind
	text string
}

// Unified renders the change from original to updated as a unified diff
// with a/ and b/ prefixed headers. Equal inputs produce an empty string.
func Unified(name string, original string, updated string) (string, error) {
	if original == updated {
		return "", nil
	}
	fd := &godiff.FileDiff{
		OrigName: "a/" + name,
		NewName:  "b/" + name,
		Hunks:    Hunks(original, updated),
	}
	out, err := godiff.PrintFileDiff(fd)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Hunks computes line hunks with three lines of context.
func Hunks(original string, updated string) []*godiff.Hunk {
	ops := lineOps(original, updated)

	changes := make([]int, 0)
	for i, op := range ops {
		if op.kind != opEqual {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return []*godiff.Hunk{}
	}

	hunks := make([]*godiff.Hunk, 0)
	groupStart := changes[0]
	prev := changes[0]
	for _, idx := range changes[1:] {
		if idx-prev-1 > 2*contextLines {
			hunks = append(hunks, buildHunk(ops, groupStart, prev))
			groupStart = idx
		}
		prev = idx
	}
	hunks = append(hunks, buildHunk(ops, groupStart, prev))
	return hunks
}

func lineOps(original string, updated string) []lineOp {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(original, updated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	ops := make([]lineOp, 0)
	for _, d := range diffs {
		kind := opEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = opDelete
		case diffmatchpatch.DiffInsert:
			kind = opInsert
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line != "" {
				ops = append(ops, lineOp{kind: kind, text: line})
			}
		}
	}
	return ops
}

// buildHunk covers ops[first..last] plus surrounding context.
func buildHunk(ops []lineOp, first int, last int) *godiff.Hunk {
	start := max(0, first-contextLines)
	end := min(len(ops), last+contextLines+1)

	origBefore, newBefore := 0, 0
	for _, op := range ops[:start] {
		if op.kind != opInsert {
			origBefore++
		}
		if op.kind != opDelete {
			newBefore++
		}
	}

	var body bytes.Buffer
	origLines, newLines := 0, 0
	for _, op := range ops[start:end] {
		if op.kind != opInsert {
			origLines++
		}
		if op.kind != opDelete {
			newLines++
		}
		body.WriteByte(byte(op.kind))
		body.WriteString(op.text)
		if !strings.HasSuffix(op.text, "\n") {
			body.WriteString("\n" + noNewline)
		}
	}

	return &godiff.Hunk{
		OrigStartLine: startLine(origBefore, origLines),
		OrigLines:     int32(origLines),
		NewStartLine:  startLine(newBefore, newLines),
		NewLines:      int32(newLines),
		Body:          body.Bytes(),
	}
}

// An empty range is addressed by the line before it.
func startLine(before int, count int) int32 {
	if count == 0 {
		return int32(before)
	}
	return int32(before + 1)
}
