package agent

import (
	"testing"

	"github.com/nstehr/arras/model"
)

// fixedResources reports stockpile amounts from a static table.
type fixedResources struct {
	amounts map[string]float64
}

func (r fixedResources) ResourceAmount(resource string) float64 {
	return r.amounts[resource]
}

func TestStateResourcesReportsByName(t *testing.T) {
	gs := model.GameState{Player: model.Player{
		Cash:          1200,
		Resources:     300,
		PowerProvided: 50,
		PowerDrained:  20,
	}}
	r := stateResources{state: func() model.GameState { return gs }}

	cases := []struct {
		resource string
		want     float64
	}{
		{"cash", 1200},
		{"Cash", 1200},
		{"ore", 300},
		{"power", 30},
		{"spice", 0},
	}
	for _, tc := range cases {
		if got := r.ResourceAmount(tc.resource); got != tc.want {
			t.Errorf("ResourceAmount(%q) = %v, want %v", tc.resource, got, tc.want)
		}
	}
}

func TestStateTechAnswersResearchQueries(t *testing.T) {
	gs := model.GameState{Researched: []string{"radar", "heavy_armor"}}
	tech := stateTech{state: func() model.GameState { return gs }}

	if !tech.IsResearched("radar") {
		t.Error("researched tech reported missing")
	}
	if !tech.IsResearched("Radar") {
		t.Error("research lookup is case sensitive")
	}
	if tech.IsResearched("nuke") {
		t.Error("unresearched tech reported present")
	}
}

func TestExpansionGateReadsResourceManager(t *testing.T) {
	f := &fakeFaction{home: model.Position{X: 0, Y: 0}}
	// The resource manager reports an empty treasury even though the raw game
	// state shows plenty of cash; the expansion gate must believe the manager.
	c, err := NewController(DefaultProfile(), Deps{
		Faction:   f,
		Orders:    f,
		Resources: fixedResources{amounts: map[string]float64{"cash": 100}},
	})
	if err != nil {
		t.Fatalf("NewController failed: %v", err)
	}

	c.Update(model.GameState{
		Tick:   30,
		Player: model.Player{Cash: 2000, PowerProvided: 100, PowerDrained: 40},
		Units: append(idleInfantry(1, 3, 2, 2),
			model.Unit{ID: 90, Type: UnitHarvester, Idle: true},
			model.Unit{ID: 91, Type: UnitHarvester, Idle: true}),
		Buildings: []model.Building{{ID: 2, Type: BuildingRefinery, HP: 100, MaxHP: 100}},
		MapWidth:  64, MapHeight: 64,
	})

	if c.Strategy() == StrategyExpansion {
		t.Fatal("controller entered expansion posture against the resource manager's report")
	}
	if c.tree.Blackboard().Has(keyLastExpansionTick) {
		t.Error("expansion attempted despite empty treasury")
	}
}
