package traceback

import (
	"errors"
	"fmt"
	"strings"

	"chell/internal/object"
)

const overflowMarker = "\t..."

var ErrEmptyChain = errors.New("traceback: empty frame chain")

// Renderer assembles one diagnostic report per caught fault. A Renderer
// holds no per-render state and may be shared; every Render call owns a
// fresh accumulator.
type Renderer struct {
	Style  Style
	Loader Loader
}

func NewRenderer() *Renderer {
	return &Renderer{Style: Color, Loader: FileLoader{}}
}

// renderState accumulates output for a single Render call. It is created
// at the start of the call and discarded once the message is assembled;
// it is never shared between calls.
type renderState struct {
	cause    error
	rendered []string
	last     *Frame
}

// Render walks the chain from the catch site down to the faulting frame
// and returns the assembled report: one block per frame, outermost call
// site first and faulting frame last, followed by a dump of the faulting
// frame's local bindings. Any failure to read a frame's source aborts the
// whole render; a partial report would be worse than none.
func (r *Renderer) Render(cause error, head *Frame) (string, error) {
	if head == nil {
		return "", ErrEmptyChain
	}

	state := &renderState{cause: cause}

	// Pass one: collect the chain shallow to deep. The frame with no
	// deeper link is where the fault was raised.
	var chain []*Frame
	for f := head; f != nil; f = f.Next {
		chain = append(chain, f)
	}
	state.last = chain[len(chain)-1]

	// Pass two: render in unwind order, deepest frame first. The block
	// list therefore holds the display order reversed.
	for i := len(chain) - 1; i >= 0; i-- {
		block, err := r.renderFrame(chain[i])
		if err != nil {
			return "", err
		}
		state.rendered = append(state.rendered, block)
	}

	return state.message(), nil
}

// renderFrame produces the text block for one frame: the source file, the
// function and failing line, and the source window.
func (r *Renderer) renderFrame(f *Frame) (string, error) {
	window, err := r.renderWindow(f)
	if err != nil {
		return "", err
	}

	block := []string{
		fmt.Sprintf("from %s", f.File),
		indentLine(fmt.Sprintf("in %q @ line %d:", f.Function, f.Line), 1),
		strings.Join(window, "\n"),
	}
	return strings.Join(block, "\n"), nil
}

// message reverses the accumulated blocks into display order and appends
// the locals section for the faulting frame.
func (s *renderState) message() string {
	rendered := make([]string, len(s.rendered))
	for i, block := range s.rendered {
		rendered[len(s.rendered)-1-i] = block
	}

	parts := []string{strings.Join(rendered, "\n"), "locals:"}
	s.last.Locals.Each(func(name string, value object.Object) {
		parts = append(parts, indentLine(name+": "+value.Inspect(), 1))
	})
	return strings.Join(parts, "\n")
}
