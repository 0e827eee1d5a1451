package traceback

import "chell/internal/object"

// Frame is a single captured execution snapshot. Frames are populated once
// at the moment a fault is caught and never mutated afterwards; the renderer
// only ever sees this immutable form, never a live execution context.
type Frame struct {
	File     string
	Function string
	Line     int // line being executed when the fault passed through
	Code     *Code
	Locals   *Locals
	Next     *Frame // next-deeper frame, nil at the faulting frame
}

// Code identifies the enclosing code unit of a frame. StartLine is the
// absolute line number of the unit's first line in File; the unit's source
// text is retrieved through a Loader.
type Code struct {
	File      string
	Name      string
	StartLine int
}

// Locals holds a frame's local bindings in insertion order, so repeated
// renders of the same chain produce identical output.
type Locals struct {
	names  []string
	values map[string]object.Object
}

func NewLocals() *Locals {
	return &Locals{values: make(map[string]object.Object)}
}

// Bind adds or replaces a binding. Rebinding an existing name keeps its
// original position.
func (l *Locals) Bind(name string, value object.Object) *Locals {
	if _, ok := l.values[name]; !ok {
		l.names = append(l.names, name)
	}
	l.values[name] = value
	return l
}

func (l *Locals) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

func (l *Locals) Each(fn func(name string, value object.Object)) {
	if l == nil {
		return
	}
	for _, name := range l.names {
		fn(name, l.values[name])
	}
}

// Fault couples the error value that triggered a report with the head of
// the frame chain captured when it was caught. The shell recognizes this
// type and hands it to the renderer.
type Fault struct {
	Err  error
	Head *Frame
}

func (f *Fault) Error() string { return f.Err.Error() }
func (f *Fault) Unwrap() error { return f.Err }
