package bt

// Node is the polymorphic unit of the tree. The set of implementations is
// closed to this package (attach and children are unexported); custom behavior
// is added through Condition and Action leaves holding caller-supplied
// functions, not through new node kinds.
type Node interface {
	Name() string
	Status() Status

	// Execute evaluates the node for this tick and returns its new status.
	Execute() Status

	// Reset rewinds the node (and any subtree it owns) to StatusReady.
	Reset()

	// ForceStatus overwrites the status without running evaluation logic.
	// Debug-only escape hatch for tooling and test harnesses; other nodes
	// must never call it.
	ForceStatus(Status)

	// attach injects the owning tree and blackboard top-down. Called on
	// SetRoot and on every structural AddChild so late-attached children
	// still receive the references.
	attach(t *BehaviorTree, bb *Blackboard)

	children() []Node
}

// core carries the identity and state every node kind shares. Concrete nodes
// embed it and call conclude to record each evaluation's outcome.
type core struct {
	name   string
	status Status
	bb     *Blackboard
	tree   *BehaviorTree
}

func (c *core) Name() string { return c.name }

func (c *core) Status() Status { return c.status }

func (c *core) ForceStatus(s Status) { c.status = s }

func (c *core) Reset() { c.status = StatusReady }

func (c *core) attach(t *BehaviorTree, bb *Blackboard) {
	c.tree = t
	c.bb = bb
}

func (c *core) children() []Node { return nil }

// conclude records the node's status and keeps the tree's running-node
// registry current. self is the embedding node; Go embedding can't recover it.
func (c *core) conclude(self Node, s Status) Status {
	c.status = s
	if c.tree != nil {
		c.tree.noteStatus(self)
	}
	return s
}
