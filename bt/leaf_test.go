package bt

import (
	"fmt"
	"testing"
	"time"
)

func TestConditionOutcomes(t *testing.T) {
	if got := stubLeaf("yes", true).Execute(); got != StatusSuccess {
		t.Errorf("true predicate: got %v", got)
	}
	if got := stubLeaf("no", false).Execute(); got != StatusFailure {
		t.Errorf("false predicate: got %v", got)
	}
}

func TestConditionErrorConvertsToFailure(t *testing.T) {
	cond := NewCondition("broken", func(*Blackboard) (bool, error) {
		return true, fmt.Errorf("lookup failed")
	})
	if got := cond.Execute(); got != StatusFailure {
		t.Fatalf("expected failure, got %v", got)
	}
}

func TestConditionPanicConvertsToFailure(t *testing.T) {
	cond := NewCondition("panicky", func(*Blackboard) (bool, error) {
		panic("nil collaborator")
	})
	if got := cond.Execute(); got != StatusFailure {
		t.Fatalf("expected failure, got %v", got)
	}
}

func TestActionErrorConvertsToFailure(t *testing.T) {
	act := NewAction("broken", func(*Blackboard) (Status, error) {
		return StatusRunning, fmt.Errorf("order rejected")
	})
	if got := act.Execute(); got != StatusFailure {
		t.Fatalf("expected failure, got %v", got)
	}
}

func TestActionTimeout(t *testing.T) {
	invocations := 0
	act := NewTimedAction("slow", time.Second, func(*Blackboard) (Status, error) {
		invocations++
		return StatusRunning, nil
	})

	// Deterministic clock: the start stamp reads t=0, the timeout check t=1.5s.
	base := time.Unix(100, 0)
	times := []time.Time{base, base.Add(1500 * time.Millisecond)}
	act.now = func() time.Time {
		now := times[0]
		if len(times) > 1 {
			times = times[1:]
		}
		return now
	}

	if got := act.Execute(); got != StatusRunning {
		t.Fatalf("t=0: expected running, got %v", got)
	}
	if got := act.Execute(); got != StatusFailure {
		t.Fatalf("t=1.5: expected timeout failure, got %v", got)
	}
	if invocations != 1 {
		t.Errorf("wrapped function invoked %d times, want 1 (never after timeout)", invocations)
	}
}

func TestActionTaskMarker(t *testing.T) {
	tree := New()
	done := false
	act := NewAction("build-base", func(bb *Blackboard) (Status, error) {
		if done {
			return StatusSuccess, nil
		}
		return StatusRunning, nil
	})
	tree.SetRoot(act)
	bb := tree.Blackboard()

	act.Execute()
	if got := bb.GetString(KeyCurrentTask); got != "build-base" {
		t.Fatalf("CurrentTask = %q while running, want node name", got)
	}

	done = true
	act.Execute()
	if bb.Has(KeyCurrentTask) {
		t.Error("CurrentTask not cleared after terminal status")
	}
}

func TestActionResetClearsTaskMarker(t *testing.T) {
	tree := New()
	act := NewAction("dig-in", func(*Blackboard) (Status, error) {
		return StatusRunning, nil
	})
	tree.SetRoot(act)

	act.Execute()
	act.Reset()

	if tree.Blackboard().Has(KeyCurrentTask) {
		t.Error("CurrentTask survived a reset")
	}
	if act.Status() != StatusReady {
		t.Errorf("status %v after reset, want ready", act.Status())
	}
}
