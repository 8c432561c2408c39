package bt

// Status is the result of a single node evaluation.
type Status int

const (
	// StatusReady marks a node that has never executed or was just reset.
	StatusReady Status = iota
	// StatusRunning means the node has not finished and must be re-entered next tick.
	StatusRunning
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	}
	return "unknown"
}
