package command

import "log/slog"

// DefaultCapacity bounds the queue; enqueues past it are dropped, not blocked.
const DefaultCapacity = 20

// DefaultMaxPerDispatch limits how many commands one Dispatch call drains.
const DefaultMaxPerDispatch = 5

// Handler executes a single dequeued command.
type Handler func(cmd Command) error

// Dispatcher accumulates commands into a bounded FIFO queue and drains a
// limited number per tick, invoking the handler registered for each command's
// type. Not safe for concurrent use; generation and dispatch both run on the
// single game-update thread.
type Dispatcher struct {
	queue          []Command
	capacity       int
	maxPerDispatch int
	handlers       map[Type]Handler
}

func NewDispatcher(capacity, maxPerDispatch int) *Dispatcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxPerDispatch <= 0 {
		maxPerDispatch = DefaultMaxPerDispatch
	}
	return &Dispatcher{
		capacity:       capacity,
		maxPerDispatch: maxPerDispatch,
		handlers:       make(map[Type]Handler),
	}
}

func (d *Dispatcher) RegisterHandler(t Type, h Handler) {
	d.handlers[t] = h
}

// Enqueue appends a command. When the queue is full the command is dropped
// silently — the generator is not told, the tree simply tries again next tick.
func (d *Dispatcher) Enqueue(cmd Command) {
	if len(d.queue) >= d.capacity {
		slog.Debug("command queue full, dropping",
			"type", cmd.Type, "priority", cmd.Priority, "id", cmd.ID)
		return
	}
	d.queue = append(d.queue, cmd)
}

// Dispatch dequeues up to maxPerDispatch commands in FIFO order — priority is
// deliberately ignored — and runs each one's handler. Commands with no
// registered handler are consumed without effect. Returns the number of
// commands dequeued.
func (d *Dispatcher) Dispatch() int {
	n := min(d.maxPerDispatch, len(d.queue))
	for i := 0; i < n; i++ {
		cmd := d.queue[i]
		handler, ok := d.handlers[cmd.Type]
		if !ok {
			slog.Debug("no handler for command type", "type", cmd.Type, "id", cmd.ID)
			continue
		}
		if err := handler(cmd); err != nil {
			slog.Error("command handler error", "type", cmd.Type, "id", cmd.ID, "error", err)
		}
	}
	d.queue = d.queue[n:]
	return n
}

// Len reports how many commands are queued.
func (d *Dispatcher) Len() int { return len(d.queue) }
