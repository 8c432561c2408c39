package bt

import (
	"strings"
	"testing"
)

func TestUpdateWritesBlackboardContract(t *testing.T) {
	tree := New()
	tree.SetRoot(NewSequence("root", stubLeaf("check", true)))
	tree.Update()

	bb := tree.Blackboard()
	if !bb.Has(KeyLastUpdateTime) {
		t.Error("LastUpdateTime not written")
	}
	if got := bb.GetString(KeyTreeState); got != "success" {
		t.Errorf("TreeState = %q, want success", got)
	}
}

func TestUpdateWithoutRootIsNoOp(t *testing.T) {
	tree := New()
	tree.Update() // must not panic

	if tree.Blackboard().Has(KeyLastUpdateTime) {
		t.Error("rootless update stamped the blackboard")
	}
}

func TestActiveRegistryTracksRunningNodes(t *testing.T) {
	flip := &countScript{script: []Status{StatusRunning, StatusSuccess}}
	tree := New()
	tree.SetRoot(NewSequence("root", flip.node("worker")))

	tree.Update()
	active := tree.ActiveNodes()
	if len(active) != 2 { // worker + root
		t.Fatalf("expected 2 active nodes, got %v", active)
	}

	tree.Update()
	if active := tree.ActiveNodes(); len(active) != 0 {
		t.Errorf("registry not pruned after terminal pass: %v", active)
	}
}

func TestResetClearsActiveRegistry(t *testing.T) {
	tree := New()
	tree.SetRoot(NewSequence("root", &alwaysRunning{name: "spin"}))
	tree.Update()

	tree.Reset()

	if active := tree.ActiveNodes(); len(active) != 0 {
		t.Errorf("active registry survived reset: %v", active)
	}
	if tree.RootStatus() != StatusReady {
		t.Errorf("root status %v after reset", tree.RootStatus())
	}
}

func TestResetKeepsBlackboardEntries(t *testing.T) {
	tree := New()
	tree.SetRoot(stubLeaf("check", true))
	tree.Blackboard().Set(KeyThreatLevel, 0.7)
	tree.Update()

	tree.Reset()

	if got := tree.Blackboard().GetFloat(KeyThreatLevel); got != 0.7 {
		t.Errorf("blackboard entry lost across reset: %v", got)
	}
}

func TestStructureDump(t *testing.T) {
	tree := New()
	tree.SetRoot(NewSelector("posture",
		NewSequence("survive", stubLeaf("threat", false)),
		stubLeaf("fallback", true),
	))
	tree.Update()

	dump := tree.Structure()
	for _, want := range []string{"posture (Selector)", "survive (Sequence)", "  threat (Condition)"} {
		if !strings.Contains(dump, want) {
			t.Errorf("structure dump missing %q:\n%s", want, dump)
		}
	}
}

func TestForceNodeStatus(t *testing.T) {
	leaf := stubLeaf("gate", false)
	tree := New()
	tree.SetRoot(NewSequence("root", leaf))

	if !tree.ForceNodeStatus("gate", StatusSuccess) {
		t.Fatal("ForceNodeStatus did not find the node")
	}
	if leaf.Status() != StatusSuccess {
		t.Errorf("status %v after force, want success", leaf.Status())
	}
	if tree.ForceNodeStatus("missing", StatusFailure) {
		t.Error("ForceNodeStatus matched a nonexistent name")
	}
}
