package bt

import (
	"fmt"
	"log/slog"
)

// wrapper is the single-child counterpart of branch.
type wrapper struct {
	core
	child Node
}

func (w *wrapper) attach(t *BehaviorTree, bb *Blackboard) {
	w.core.attach(t, bb)
	if w.child != nil {
		w.child.attach(t, bb)
	}
}

func (w *wrapper) children() []Node {
	if w.child == nil {
		return nil
	}
	return []Node{w.child}
}

func (w *wrapper) Reset() {
	w.core.Reset()
	if w.child != nil {
		w.child.Reset()
	}
}

// Repeat re-runs its child until it has completed (Success or Failure) the
// configured number of times. The completion counter lives on the node, not in
// a closure, because the child is reset after every terminal status.
// count <= 0 repeats forever; such a Repeat never reports Success on its own.
type Repeat struct {
	wrapper
	count     int
	completed int
}

func NewRepeat(name string, count int, child Node) *Repeat {
	r := &Repeat{count: count}
	r.name = name
	r.child = child
	return r
}

func (r *Repeat) Execute() Status {
	if st := r.child.Execute(); st == StatusRunning {
		return r.conclude(r, StatusRunning)
	}

	r.child.Reset()
	r.completed++
	if r.count > 0 && r.completed >= r.count {
		return r.conclude(r, StatusSuccess)
	}
	return r.conclude(r, StatusRunning)
}

func (r *Repeat) Reset() {
	r.completed = 0
	r.wrapper.Reset()
}

// Inverter swaps its child's Success and Failure; Running passes through.
type Inverter struct {
	wrapper
}

func NewInverter(name string, child Node) *Inverter {
	i := &Inverter{}
	i.name = name
	i.child = child
	return i
}

func (i *Inverter) Execute() Status {
	switch i.child.Execute() {
	case StatusSuccess:
		return i.conclude(i, StatusFailure)
	case StatusFailure:
		return i.conclude(i, StatusSuccess)
	}
	return i.conclude(i, StatusRunning)
}

// TransformFunc maps a child evaluation to the decorator's status. The child
// is passed unevaluated; the transform decides whether and how to execute it.
type TransformFunc func(child Node) Status

// Decorator applies a caller-supplied transform around its child. A panic
// inside the transform is recovered, logged and reported as Failure — nothing
// escapes a node boundary.
type Decorator struct {
	wrapper
	transform TransformFunc
}

func NewDecorator(name string, transform TransformFunc, child Node) *Decorator {
	d := &Decorator{transform: transform}
	d.name = name
	d.child = child
	return d
}

func (d *Decorator) Execute() Status {
	st, err := d.run()
	if err != nil {
		slog.Warn("decorator transform failed", "node", d.name, "error", err)
		return d.conclude(d, StatusFailure)
	}
	return d.conclude(d, st)
}

func (d *Decorator) run() (st Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if d.transform == nil {
		return StatusFailure, fmt.Errorf("no transform configured")
	}
	return d.transform(d.child), nil
}
