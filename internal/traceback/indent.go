package traceback

import "strings"

const tabSize = 4

var tab = strings.Repeat(" ", tabSize)

func indentLine(line string, tabCount int) string {
	if tabCount < 1 {
		tabCount = 1
	}
	return strings.Repeat(tab, tabCount) + line
}

// indentLines indents each line for which predicate holds (all lines when
// predicate is nil), in place, and returns the slice.
func indentLines(lines []string, predicate func(string) bool, tabCount int) []string {
	for i, line := range lines {
		if predicate != nil && !predicate(line) {
			continue
		}
		lines[i] = indentLine(line, tabCount)
	}
	return lines
}
