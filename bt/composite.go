package bt

// branch is the shared child-management backbone of the composite kinds.
// The parent exclusively owns its children; resetting the parent resets the
// whole subtree.
type branch struct {
	core
	kids []Node
}

// AddChild appends a child in evaluation order. If the composite is already
// attached to a tree, the blackboard reference is propagated immediately so a
// child added after construction behaves like one passed to the constructor.
func (b *branch) AddChild(n Node) {
	b.kids = append(b.kids, n)
	if b.tree != nil || b.bb != nil {
		n.attach(b.tree, b.bb)
	}
}

func (b *branch) attach(t *BehaviorTree, bb *Blackboard) {
	b.core.attach(t, bb)
	for _, k := range b.kids {
		k.attach(t, bb)
	}
}

func (b *branch) children() []Node { return b.kids }

func (b *branch) Reset() {
	b.core.Reset()
	for _, k := range b.kids {
		k.Reset()
	}
}

// Sequence evaluates children left to right every call: Failure on the first
// child Failure, Running on the first child Running, Success only when all
// children succeed in one pass. A Running child does not checkpoint progress —
// the next tick re-evaluates from child 0, so earlier conditions are
// re-checked before the running child is re-entered.
type Sequence struct {
	branch
}

func NewSequence(name string, children ...Node) *Sequence {
	s := &Sequence{}
	s.name = name
	s.kids = children
	return s
}

func (s *Sequence) Execute() Status {
	for _, child := range s.kids {
		switch child.Execute() {
		case StatusFailure:
			return s.conclude(s, StatusFailure)
		case StatusRunning:
			return s.conclude(s, StatusRunning)
		}
	}
	return s.conclude(s, StatusSuccess)
}

// Selector is the mirror of Sequence: Success on the first child Success,
// Running on the first child Running, Failure only when every child fails.
type Selector struct {
	branch
}

func NewSelector(name string, children ...Node) *Selector {
	s := &Selector{}
	s.name = name
	s.kids = children
	return s
}

func (s *Selector) Execute() Status {
	for _, child := range s.kids {
		switch child.Execute() {
		case StatusSuccess:
			return s.conclude(s, StatusSuccess)
		case StatusRunning:
			return s.conclude(s, StatusRunning)
		}
	}
	return s.conclude(s, StatusFailure)
}

// Parallel re-executes every child still Ready or Running each call and
// tallies terminal outcomes cumulatively across ticks (terminal children are
// not re-entered, so the tallies only grow until Reset). It succeeds once
// requiredSuccesses is reached and fails once requiredFailures is reached;
// otherwise it keeps Running.
type Parallel struct {
	branch
	requiredSuccesses int
	requiredFailures  int // <= 0 means the node never fails on child failures
	successes         int
	failures          int
}

// NewParallel builds a parallel composite. requiredSuccesses <= 0 defaults to 1;
// requiredFailures <= 0 leaves the failure threshold unbounded.
func NewParallel(name string, requiredSuccesses, requiredFailures int, children ...Node) *Parallel {
	if requiredSuccesses <= 0 {
		requiredSuccesses = 1
	}
	p := &Parallel{requiredSuccesses: requiredSuccesses, requiredFailures: requiredFailures}
	p.name = name
	p.kids = children
	return p
}

func (p *Parallel) Execute() Status {
	for _, child := range p.kids {
		if st := child.Status(); st != StatusReady && st != StatusRunning {
			continue
		}
		switch child.Execute() {
		case StatusSuccess:
			p.successes++
		case StatusFailure:
			p.failures++
		}
	}

	if p.successes >= p.requiredSuccesses {
		return p.conclude(p, StatusSuccess)
	}
	if p.requiredFailures > 0 && p.failures >= p.requiredFailures {
		return p.conclude(p, StatusFailure)
	}
	return p.conclude(p, StatusRunning)
}

func (p *Parallel) Reset() {
	p.successes = 0
	p.failures = 0
	p.branch.Reset()
}
