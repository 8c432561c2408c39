package agent

import (
	"testing"

	"github.com/nstehr/arras/model"
)

func TestGroupFillRespectsCountAndSkipsMembers(t *testing.T) {
	g := NewUnitGroup("attack-1", GroupAttack)
	g.UnitIDs = []int{1}

	pool := []model.Unit{
		{ID: 1, Type: UnitInfantry, Idle: true},
		{ID: 2, Type: UnitInfantry, Idle: true},
		{ID: 3, Type: UnitInfantry, Idle: true},
		{ID: 4, Type: UnitInfantry, Idle: true},
	}
	added := g.Fill(pool, 3, false)

	if added != 2 {
		t.Errorf("added %d units, want 2", added)
	}
	if len(g.UnitIDs) != 3 {
		t.Errorf("group size %d, want 3", len(g.UnitIDs))
	}
	for _, id := range g.UnitIDs[1:] {
		if id == 1 {
			t.Error("existing member re-added")
		}
	}
}

func TestGroupFillFastFirstPrefersSpeed(t *testing.T) {
	g := NewUnitGroup("scout", GroupScout)
	pool := []model.Unit{
		{ID: 1, Type: UnitInfantry, Speed: 3},
		{ID: 2, Type: "jeep", Speed: 9},
		{ID: 3, Type: UnitTank, Speed: 5},
	}
	g.Fill(pool, 1, true)

	if len(g.UnitIDs) != 1 || g.UnitIDs[0] != 2 {
		t.Errorf("scout fill picked %v, want fastest unit 2", g.UnitIDs)
	}
}

func TestGroupPruneDropsDeadMembers(t *testing.T) {
	g := NewUnitGroup("attack-1", GroupAttack)
	g.UnitIDs = []int{1, 2, 3, 4, 5}

	g.Prune(map[int]bool{2: true, 4: true})

	if len(g.UnitIDs) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(g.UnitIDs))
	}
	for _, id := range g.UnitIDs {
		if id != 2 && id != 4 {
			t.Errorf("unexpected surviving unit %d", id)
		}
	}
	if g.Empty() {
		t.Error("group with survivors reported empty")
	}
}

func TestGroupExecuteOrdersByType(t *testing.T) {
	f := &fakeFaction{}

	attack := NewUnitGroup("attack-1", GroupAttack)
	attack.UnitIDs = []int{1, 2}
	attack.Target = model.Position{X: 30, Y: 30}
	if err := attack.ExecuteOrders(f); err != nil {
		t.Fatalf("attack orders: %v", err)
	}
	if len(f.attacks) != 1 || f.attackAt[0].X != 30 {
		t.Errorf("attack group did not attack-move to target")
	}
	if attack.Objective != "attacking" {
		t.Errorf("objective %q", attack.Objective)
	}

	defense := NewUnitGroup("defense", GroupDefense)
	defense.UnitIDs = []int{3}
	defense.Position = model.Position{X: 5, Y: 5}
	if err := defense.ExecuteOrders(f); err != nil {
		t.Fatalf("defense orders: %v", err)
	}
	if len(f.moves) != 1 || f.moveTargets[0].X != 5 {
		t.Errorf("defense group did not move to rally position")
	}
}

func TestEmptyGroupIssuesNoOrders(t *testing.T) {
	f := &fakeFaction{}
	g := NewUnitGroup("attack-1", GroupAttack)
	if err := g.ExecuteOrders(f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.attacks)+len(f.moves) != 0 {
		t.Error("empty group issued orders")
	}
}
