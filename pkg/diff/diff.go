// Package diff renders unified diffs for dry-run build previews.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Unified compares the file currently on disk with the content a build
// would write and returns a unified diff. Returns the empty string
// when the contents are identical. The output carries no timestamps so
// repeated dry runs stay byte-identical.
func Unified(current, pending []byte, path string) string {
	if bytes.Equal(current, pending) {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(current), string(pending), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	currentLines := strings.Count(string(current), "\n") + 1
	pendingLines := strings.Count(string(pending), "\n") + 1

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- a/%s\n", path)
	fmt.Fprintf(&buf, "+++ b/%s\n", path)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", currentLines, pendingLines)

	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			prefix = " "
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}

	return result
}

// splitLines splits diff fragments on newlines, dropping the empty
// trailing element a terminal newline produces.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}
