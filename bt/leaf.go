package bt

import (
	"fmt"
	"log/slog"
	"time"
)

// ConditionFunc is a predicate evaluated fresh on every call.
type ConditionFunc func(bb *Blackboard) (bool, error)

// Condition is a leaf wrapping a predicate. Errors and panics from the
// predicate are logged and reported as Failure; a condition never throws
// outward.
type Condition struct {
	core
	pred ConditionFunc
}

func NewCondition(name string, pred ConditionFunc) *Condition {
	c := &Condition{pred: pred}
	c.name = name
	return c
}

func (c *Condition) Execute() Status {
	ok, err := c.check()
	if err != nil {
		slog.Warn("condition failed", "node", c.name, "error", err)
		return c.conclude(c, StatusFailure)
	}
	if ok {
		return c.conclude(c, StatusSuccess)
	}
	return c.conclude(c, StatusFailure)
}

func (c *Condition) check() (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if c.pred == nil {
		return false, fmt.Errorf("no predicate configured")
	}
	return c.pred(c.bb)
}

// ActionFunc performs one tick of work and reports the resulting status.
// Multi-tick actions must keep their own progress (a counter, a stored
// timestamp) — a Running action is re-entered from scratch next tick, not
// resumed mid-function.
type ActionFunc func(bb *Blackboard) (Status, error)

// Action is a leaf wrapping a work function, with an optional timeout.
// Entering the action records a start time and writes the node's name to the
// CurrentTask blackboard key; once elapsed time exceeds the timeout the action
// reports Failure without invoking the function again. Terminal results and
// errors clear the task marker.
type Action struct {
	core
	fn      ActionFunc
	timeout time.Duration // 0 disables the deadline
	start   time.Time
	now     func() time.Time // swapped out by tests
}

func NewAction(name string, fn ActionFunc) *Action {
	a := &Action{fn: fn, now: time.Now}
	a.name = name
	return a
}

// NewTimedAction builds an action that fails once it has been running longer
// than timeout.
func NewTimedAction(name string, timeout time.Duration, fn ActionFunc) *Action {
	a := NewAction(name, fn)
	a.timeout = timeout
	return a
}

func (a *Action) Execute() Status {
	if a.status != StatusRunning {
		// Ready (or terminal being re-driven by a composite): new attempt.
		a.start = a.now()
		a.setTask()
	} else if a.timeout > 0 && a.now().Sub(a.start) > a.timeout {
		slog.Warn("action timed out", "node", a.name, "timeout", a.timeout)
		a.clearTask()
		return a.conclude(a, StatusFailure)
	}

	st, err := a.invoke()
	if err != nil {
		slog.Warn("action failed", "node", a.name, "error", err)
		a.clearTask()
		return a.conclude(a, StatusFailure)
	}
	if st != StatusRunning {
		a.clearTask()
	}
	return a.conclude(a, st)
}

func (a *Action) invoke() (st Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if a.fn == nil {
		return StatusFailure, fmt.Errorf("no function configured")
	}
	return a.fn(a.bb)
}

func (a *Action) Reset() {
	a.clearTask()
	a.core.Reset()
}

func (a *Action) setTask() {
	if a.bb != nil {
		a.bb.Set(KeyCurrentTask, a.name)
	}
}

func (a *Action) clearTask() {
	if a.bb != nil && a.bb.GetString(KeyCurrentTask) == a.name {
		a.bb.Delete(KeyCurrentTask)
	}
}
