package bt

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// BehaviorTree owns a root node and the blackboard and drives one evaluation
// per tick. It also keeps a registry of nodes currently Running — purely for
// introspection and debug tooling, never consulted during evaluation.
type BehaviorTree struct {
	root   Node
	bb     *Blackboard
	active map[string]Node
	now    func() time.Time
}

func New() *BehaviorTree {
	return &BehaviorTree{
		bb:     NewBlackboard(),
		active: make(map[string]Node),
		now:    time.Now,
	}
}

func (t *BehaviorTree) Blackboard() *Blackboard { return t.bb }

// RootStatus reports the root's current status, StatusReady when no root is set.
func (t *BehaviorTree) RootStatus() Status {
	if t.root == nil {
		return StatusReady
	}
	return t.root.Status()
}

// SetRoot attaches the root node and propagates the tree and blackboard
// references through the whole subtree.
func (t *BehaviorTree) SetRoot(n Node) {
	t.root = n
	n.attach(t, t.bb)
}

// Update runs one evaluation cycle: stamp the blackboard, execute the root,
// publish the resulting status, prune the running-node registry.
func (t *BehaviorTree) Update() {
	if t.root == nil {
		slog.Error("behavior tree update with no root set")
		return
	}

	t.bb.Set(KeyLastUpdateTime, t.now())
	st := t.root.Execute()
	t.bb.Set(KeyTreeState, st.String())

	for name, n := range t.active {
		if n.Status() != StatusRunning {
			delete(t.active, name)
		}
	}
}

// Reset rewinds the whole subtree to Ready and clears the running registry.
// Blackboard entries survive a reset; only node statuses rewind.
func (t *BehaviorTree) Reset() {
	if t.root != nil {
		t.root.Reset()
	}
	clear(t.active)
}

// noteStatus is called by nodes as they conclude each evaluation.
func (t *BehaviorTree) noteStatus(n Node) {
	if n.Status() == StatusRunning {
		t.active[n.Name()] = n
	} else {
		delete(t.active, n.Name())
	}
}

// ActiveNodes lists the names of nodes currently Running, sorted for stable
// log output.
func (t *BehaviorTree) ActiveNodes() []string {
	names := make([]string, 0, len(t.active))
	for name := range t.active {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Structure renders an indented depth-first dump of the tree for debugging:
// one line per node with its name, kind and current status.
func (t *BehaviorTree) Structure() string {
	if t.root == nil {
		return "(empty tree)"
	}
	var b strings.Builder
	dumpNode(&b, t.root, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", n), "*bt.")
	fmt.Fprintf(b, "%s%s (%s) [%s]\n", strings.Repeat("  ", depth), n.Name(), kind, n.Status())
	for _, child := range n.children() {
		dumpNode(b, child, depth+1)
	}
}

// ForceNodeStatus finds the first node (depth-first) whose name matches and
// force-sets its status. Debug/test harness hook; returns false if no node
// matched.
func (t *BehaviorTree) ForceNodeStatus(name string, st Status) bool {
	if t.root == nil {
		return false
	}
	n := findNode(t.root, name)
	if n == nil {
		return false
	}
	n.ForceStatus(st)
	t.noteStatus(n)
	return true
}

func findNode(n Node, name string) Node {
	if n.Name() == name {
		return n
	}
	for _, child := range n.children() {
		if found := findNode(child, name); found != nil {
			return found
		}
	}
	return nil
}
