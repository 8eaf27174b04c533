// Package header keeps the RAM usage comment at the top of a source file in
// step with what the game reported for it.
package header

import (
	"bbsync/internal/util"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const prefix = "// Ram usage: "

var usageLine = regexp.MustCompile(`// Ram usage: [^\r\n]*`)

func Comment(ramUsage float64) string {
	return prefix + strconv.FormatFloat(ramUsage, 'f', -1, 64) + "GB"
}

// Render returns content carrying the usage comment and whether it differs
// from the input. When content already holds the exact comment it is
// returned untouched; the annotated file is itself watched, and this is
// what stops a write from triggering another write.
func Render(content string, ramUsage float64) (string, bool) {
	comment := Comment(ramUsage)

	if strings.Contains(content, comment) {
		return content, false
	}

	if loc := usageLine.FindStringIndex(content); loc != nil {
		return content[:loc[0]] + comment + content[loc[1]:], true
	}

	return comment + "\n\n" + content, true
}

// Annotate rewrites the file at path when its usage comment is missing or
// stale. It reports whether a write happened.
func Annotate(path string, ramUsage float64) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, changed := Render(string(data), ramUsage)
	if !changed {
		return false, nil
	}

	if err := util.WriteInPlace(path, []byte(updated)); err != nil {
		return false, err
	}

	return true, nil
}
