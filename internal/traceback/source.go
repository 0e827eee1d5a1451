package traceback

import (
	"fmt"
	"os"
	"strings"
)

// Loader retrieves the full source text of a code unit, starting at its
// first line. A failed load is terminal for the render that requested it.
type Loader interface {
	Source(code *Code) (string, error)
}

// FileLoader reads code unit source from the file named by the unit. The
// returned text runs from the unit's first line to the end of the file;
// the window renderer discards everything past the failing line anyway.
type FileLoader struct{}

func (FileLoader) Source(code *Code) (string, error) {
	data, err := os.ReadFile(code.File)
	if err != nil {
		return "", fmt.Errorf("source for %q: %w", code.Name, err)
	}
	lines := strings.Split(string(data), "\n")
	if code.StartLine < 1 || code.StartLine > len(lines) {
		return "", fmt.Errorf("source for %q: start line %d out of range in %s",
			code.Name, code.StartLine, code.File)
	}
	return strings.Join(lines[code.StartLine-1:], "\n"), nil
}

// MapLoader serves source text from memory, keyed by code unit name.
// Hosts without source files on disk can capture text at snapshot time
// and hand it to the renderer through one of these.
type MapLoader map[string]string

func (m MapLoader) Source(code *Code) (string, error) {
	src, ok := m[code.Name]
	if !ok {
		return "", fmt.Errorf("source for %q: not captured", code.Name)
	}
	return src, nil
}
