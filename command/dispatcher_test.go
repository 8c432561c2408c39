package command

import (
	"fmt"
	"testing"
)

func TestEnqueueDropsBeyondCapacity(t *testing.T) {
	d := NewDispatcher(20, 5)
	for i := 0; i < 21; i++ {
		d.Enqueue(New(TypeTrainUnit, PriorityNormal, nil))
	}
	if got := d.Len(); got != 20 {
		t.Fatalf("queue length %d after overflow, want 20", got)
	}
}

func TestDispatchDrainsAtMostMax(t *testing.T) {
	d := NewDispatcher(20, 5)
	handled := 0
	d.RegisterHandler(TypeTrainUnit, func(Command) error {
		handled++
		return nil
	})
	for i := 0; i < 8; i++ {
		d.Enqueue(New(TypeTrainUnit, PriorityNormal, nil))
	}

	if got := d.Dispatch(); got != 5 {
		t.Fatalf("dispatch drained %d, want 5", got)
	}
	if handled != 5 {
		t.Errorf("handler ran %d times, want 5", handled)
	}
	if got := d.Len(); got != 3 {
		t.Errorf("queue length %d after dispatch, want 3", got)
	}
}

func TestDispatchIsFIFORegardlessOfPriority(t *testing.T) {
	d := NewDispatcher(20, 10)
	var order []string
	d.RegisterHandler(TypeConstruct, func(cmd Command) error {
		order = append(order, cmd.StringParam("building_type"))
		return nil
	})

	d.Enqueue(New(TypeConstruct, PriorityLow, map[string]any{"building_type": "first"}))
	d.Enqueue(New(TypeConstruct, PriorityCritical, map[string]any{"building_type": "second"}))
	d.Enqueue(New(TypeConstruct, PriorityHigh, map[string]any{"building_type": "third"}))
	d.Dispatch()

	want := []string{"first", "second", "third"}
	for i, name := range want {
		if i >= len(order) || order[i] != name {
			t.Fatalf("dispatch order %v, want %v", order, want)
		}
	}
}

func TestUnknownCommandTypeIsConsumedSilently(t *testing.T) {
	d := NewDispatcher(20, 5)
	d.Enqueue(New(Type("teleport"), PriorityNormal, nil))

	if got := d.Dispatch(); got != 1 {
		t.Fatalf("dispatch count %d, want 1", got)
	}
	if d.Len() != 0 {
		t.Error("unhandled command left in queue")
	}
}

func TestHandlerErrorDoesNotStopBatch(t *testing.T) {
	d := NewDispatcher(20, 5)
	handled := 0
	d.RegisterHandler(TypeRepair, func(Command) error {
		handled++
		if handled == 1 {
			return fmt.Errorf("building already gone")
		}
		return nil
	})
	d.Enqueue(New(TypeRepair, PriorityNormal, nil))
	d.Enqueue(New(TypeRepair, PriorityNormal, nil))

	d.Dispatch()
	if handled != 2 {
		t.Errorf("handler ran %d times, want 2", handled)
	}
}

func TestCommandParamsAreCopied(t *testing.T) {
	params := map[string]any{"unit_type": "tank"}
	cmd := New(TypeTrainUnit, PriorityNormal, params)
	params["unit_type"] = "infantry"

	if got := cmd.StringParam("unit_type"); got != "tank" {
		t.Errorf("command saw caller mutation: %q", got)
	}
}
