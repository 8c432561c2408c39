package command

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies which dispatch handler a command routes to.
type Type string

const (
	TypeTrainUnit Type = "train_unit"
	TypeConstruct Type = "construct"
	TypeAttack    Type = "attack"
	TypeDefend    Type = "defend"
	TypeScout     Type = "scout"
	TypeExpand    Type = "expand"
	TypeRepair    Type = "repair"
)

// Priority is carried on every command for logging and future scheduling.
// Dispatch is strictly FIFO today; the field is data, not an ordering input.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityCritical:
		return "critical"
	}
	return "unknown"
}

// Command is an immutable-after-creation record of an intended game action.
type Command struct {
	ID        uuid.UUID
	Type      Type
	Priority  Priority
	Params    map[string]any
	CreatedAt time.Time
}

// New builds a command, copying params so later mutation by the caller can't
// leak into a queued command.
func New(t Type, p Priority, params map[string]any) Command {
	copied := make(map[string]any, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Command{
		ID:        uuid.New(),
		Type:      t,
		Priority:  p,
		Params:    copied,
		CreatedAt: time.Now(),
	}
}

// StringParam reads a string parameter, "" when absent.
func (c Command) StringParam(key string) string {
	if v, ok := c.Params[key].(string); ok {
		return v
	}
	return ""
}

// IntParam reads an int parameter, 0 when absent.
func (c Command) IntParam(key string) int {
	if v, ok := c.Params[key].(int); ok {
		return v
	}
	return 0
}
