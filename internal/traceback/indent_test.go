package traceback

import (
	"strings"
	"testing"
)

func TestIndentLine(t *testing.T) {
	if got := indentLine("x", 1); got != "    x" {
		t.Errorf("indentLine(1) = %q", got)
	}
	if got := indentLine("x", 2); got != "        x" {
		t.Errorf("indentLine(2) = %q", got)
	}
	if got := indentLine("x", 0); got != "    x" {
		t.Errorf("indentLine must default to one tab, got %q", got)
	}
}

func TestIndentLinesWithPredicate(t *testing.T) {
	lines := []string{"keep", "skip", "keep"}
	got := indentLines(lines, func(l string) bool { return l != "skip" }, 1)

	want := []string{"    keep", "skip", "    keep"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("indentLines = %v, want %v", got, want)
	}
}

func TestIndentLinesNilPredicate(t *testing.T) {
	got := indentLines([]string{"a", "b"}, nil, 1)
	if got[0] != "    a" || got[1] != "    b" {
		t.Errorf("nil predicate must indent every line, got %v", got)
	}
}
