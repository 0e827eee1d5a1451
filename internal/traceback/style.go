package traceback

import "fmt"

// Style selects the output encoding for rendered reports. Line selection
// and numbering are identical across styles; only the escape sequences
// around line numbers and the failing-line marker differ.
type Style struct {
	lineNo  string
	errMark string
}

var (
	// Color is the terminal style: magenta line numbers, red failing-line marker.
	Color = Style{
		lineNo:  "\033[35m%s\033[0m",
		errMark: "%s \033[31m<<]\033[0m",
	}

	// Plain carries the same markers without escape sequences, for log
	// sinks and tests.
	Plain = Style{
		lineNo:  "%s",
		errMark: "%s <<]",
	}
)

func (s Style) lineNumber(n string) string { return fmt.Sprintf(s.lineNo, n) }
func (s Style) markErr(line string) string { return fmt.Sprintf(s.errMark, line) }
