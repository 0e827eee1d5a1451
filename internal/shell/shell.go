package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"chell/internal/history"
	"chell/internal/traceback"
)

// Token classifies one line of shell input.
type Token string

const (
	TokenUnknown Token = "unknown"
	TokenExit    Token = "exit"
)

// Classify matches a line against the fixed token set. Anything that is
// not a recognized token is unknown, which the loop treats as input to
// hand to the command handler, never as an error.
func Classify(line string) Token {
	if Token(line) == TokenExit {
		return TokenExit
	}
	return TokenUnknown
}

const (
	prompt      = "\033[35m%\033[0m "
	promptPlain = "% "
)

// Shell is the interactive read loop. It owns no render state; when a
// command raises a Fault the shell asks the renderer for a report and
// writes it to Out before prompting again.
type Shell struct {
	In       io.Reader
	Out      io.Writer
	Renderer *traceback.Renderer
	History  *history.Store

	// Handle processes one line of non-exit input. A returned
	// *traceback.Fault is rendered as a traceback; any other error is
	// written as-is. Nil means input is read and recorded but ignored.
	Handle func(line string) error

	Color bool
}

func New() *Shell {
	return &Shell{
		In:       os.Stdin,
		Out:      os.Stdout,
		Renderer: traceback.NewRenderer(),
		Color:    true,
	}
}

func (s *Shell) prompt() string {
	if s.Color {
		return prompt
	}
	return promptPlain
}

// Run reads lines until the exit token or end of input.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Out, s.prompt())
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := scanner.Text()
		s.record(line)

		if Classify(line) == TokenExit {
			slog.Debug("shell exiting on exit token")
			return nil
		}
		s.dispatch(line)
	}
}

func (s *Shell) record(line string) {
	if s.History == nil || line == "" {
		return
	}
	if err := s.History.Append(line); err != nil {
		// History is best effort; the loop keeps going.
		slog.Warn("history write failed", slog.Any("error", err))
	}
}

func (s *Shell) dispatch(line string) {
	if s.Handle == nil {
		return
	}
	err := s.Handle(line)
	if err == nil {
		return
	}

	var fault *traceback.Fault
	if errors.As(err, &fault) {
		s.display(fault)
		return
	}
	fmt.Fprintln(s.Out, err)
}

func (s *Shell) display(fault *traceback.Fault) {
	report, err := s.Renderer.Render(fault.Err, fault.Head)
	if err != nil {
		// The renderer refuses to emit partial reports; fall back to the
		// bare cause so the original failure is still visible.
		slog.Error("traceback render failed",
			slog.Any("error", err),
			slog.Any("cause", fault.Err))
		fmt.Fprintln(s.Out, fault.Err)
		return
	}
	fmt.Fprintln(s.Out, report)
}
