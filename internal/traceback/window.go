package traceback

import "fmt"

// renderWindow formats the span of source from the top of the frame's code
// unit through its failing line: one overflow marker above, one below, each
// line numbered with its absolute position in the file and the failing line
// marked. The markers are emitted unconditionally, whether or not content
// was actually cut.
func (r *Renderer) renderWindow(f *Frame) ([]string, error) {
	src, err := r.Loader.Source(f.Code)
	if err != nil {
		return nil, err
	}

	start := f.Code.StartLine
	offset := f.Line - start

	lines := splitLines(src)
	// Clamp rather than fail when the recorded line falls outside the
	// unit's source; a skewed window beats losing the whole report.
	if offset < 0 {
		offset = 0
	}
	if offset >= len(lines) {
		offset = len(lines) - 1
	}
	lines = lines[:offset+1]

	window := make([]string, 0, len(lines)+2)
	window = append(window, overflowMarker)
	window = append(window, lines...)
	window = append(window, overflowMarker)
	window = indentLines(window, nil, 1)

	// The leading marker occupies index 0, so a line's absolute number is
	// start+index-1. Only the line matching the frame's failing line gets
	// the error mark; the trailing marker lands one past it and never does.
	for i, line := range window {
		number := start + i - 1
		if number == f.Line {
			line = r.Style.markErr(line)
		}
		tag := r.Style.lineNumber(fmt.Sprintf("%03d", number))
		window[i] = fmt.Sprintf("|%s %s", tag, line)
	}
	return window, nil
}

func splitLines(src string) []string {
	lines := []string{}
	current := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, src[current:i])
			current = i + 1
		}
	}
	if current < len(src) {
		lines = append(lines, src[current:])
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}
