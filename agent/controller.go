package agent

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/arras/bt"
	"github.com/nstehr/arras/command"
	"github.com/nstehr/arras/model"
)

// Strategy is the controller's high-level posture; it drives which command
// generator runs each generation pass.
type Strategy string

const (
	StrategyEconomic  Strategy = "economic"
	StrategyMilitary  Strategy = "military"
	StrategyExpansion Strategy = "expansion"
	StrategyDefensive Strategy = "defensive"
)

// Blackboard keys owned by the controller beyond the shared contract in bt.
const (
	keyStrategy          = "Strategy"
	keyWantScout         = "WantScout"
	keyLastExpansionTick = "LastExpansionTick"
)

// retreatThreshold is the threat level at which attack groups are recalled.
const retreatThreshold = 0.8

// Deps are the external collaborators injected at construction. Nothing in
// the core reaches for them any other way.
type Deps struct {
	Faction   FactionController
	Orders    UnitOrders
	Resources ResourceManager
	Tech      TechTree
}

// Controller composes the behavior tree, the command dispatcher and the unit
// groups into the per-tick decision loop: assess threat, tick the tree,
// generate commands on the configured cadence, dispatch, update groups.
type Controller struct {
	profile    Profile
	deps       Deps
	tree       *bt.BehaviorTree
	dispatcher *command.Dispatcher
	groups     map[string]*UnitGroup
	assessor   ThreatAssessor

	strategy    Strategy
	state       model.GameState
	threat      float64
	lastGenTick int
	groupSeq    int

	lastIdleDiagTick int
	lastDebugTick    int
}

func NewController(profile Profile, deps Deps) (*Controller, error) {
	profile.Validate()
	if deps.Faction == nil || deps.Orders == nil {
		return nil, fmt.Errorf("faction controller and unit orders are required")
	}

	c := &Controller{
		profile:    profile,
		deps:       deps,
		tree:       bt.New(),
		dispatcher: command.NewDispatcher(command.DefaultCapacity, command.DefaultMaxPerDispatch),
		groups:     make(map[string]*UnitGroup),
		strategy:   StrategyEconomic,
	}

	root, err := c.buildTree()
	if err != nil {
		return nil, fmt.Errorf("build behavior tree: %w", err)
	}
	c.tree.SetRoot(root)

	bb := c.tree.Blackboard()
	bb.Set(bt.KeyAIController, c)
	bb.Set(keyStrategy, string(c.strategy))
	if deps.Resources != nil {
		bb.Set(bt.KeyResourceManager, deps.Resources)
	}
	if deps.Tech != nil {
		bb.Set(bt.KeyResearchSystem, deps.Tech)
	}

	c.registerHandlers()
	return c, nil
}

// Tree exposes the behavior tree for introspection tooling.
func (c *Controller) Tree() *bt.BehaviorTree { return c.tree }

// Strategy reports the current posture.
func (c *Controller) Strategy() Strategy { return c.strategy }

// SetDebug toggles periodic tree-structure dumps.
func (c *Controller) SetDebug(on bool) {
	c.tree.Blackboard().Set(bt.KeyDebugMode, on)
}

// Update runs one full decision tick. Everything happens on the caller's
// goroutine, in this order: blackboard writes, tree evaluation, command
// generation (on cadence), dispatch, group upkeep.
func (c *Controller) Update(gs model.GameState) {
	c.state = gs
	bb := c.tree.Blackboard()
	bb.Set(bt.KeyGameState, gs)

	report := c.assessor.Assess(gs, c.deps.Faction.HomeBasePosition())
	c.threat = report.Level
	bb.Set(bt.KeyThreatLevel, report.Level)
	if report.EnemyBaseFound {
		bb.Set(bt.KeyEnemyBaseLocated, true)
		bb.Set(bt.KeyEnemyBasePos, report.EnemyBasePos)
	}

	// A terminal pass is complete; rewind statuses so this tick re-evaluates
	// from the top. Running subtrees keep their progress.
	if st := c.tree.RootStatus(); st == bt.StatusSuccess || st == bt.StatusFailure {
		c.tree.Reset()
	}
	c.tree.Update()

	if gs.Tick-c.lastGenTick >= c.profile.GenerationInterval {
		c.generateCommands(report)
		c.lastGenTick = gs.Tick
	}

	dispatched := c.dispatcher.Dispatch()
	c.updateGroups()

	if dispatched == 0 {
		c.logIdleDiagnostics()
	}
	if bb.GetBool(bt.KeyDebugMode) && gs.Tick-c.lastDebugTick >= 100 {
		c.lastDebugTick = gs.Tick
		slog.Debug("tree structure\n" + c.tree.Structure())
	}
}

// setStrategy is called from tree action leaves; it records the posture both
// on the controller and in the blackboard.
func (c *Controller) setStrategy(s Strategy) {
	if c.strategy != s {
		slog.Info("strategy changed", "from", c.strategy, "to", s, "threat", c.threat)
	}
	c.strategy = s
	c.tree.Blackboard().Set(keyStrategy, string(s))
}

// updateGroups prunes dead members, dissolves empty groups and recalls attack
// groups when the threat is critical.
func (c *Controller) updateGroups() {
	alive := make(map[int]bool, len(c.state.Units))
	for _, u := range c.state.Units {
		alive[u.ID] = true
	}

	bb := c.tree.Blackboard()
	home := c.deps.Faction.HomeBasePosition()
	for name, g := range c.groups {
		g.Prune(alive)
		if g.Empty() {
			slog.Info("group dissolved", "group", name)
			delete(c.groups, name)
			// Drop blackboard references to the dead group so the tree sees
			// it gone — a stale ScoutGroup entry would gate recon forever.
			if bb.GetString(bt.KeyScoutGroup) == name {
				bb.Delete(bt.KeyScoutGroup)
			}
			if bb.GetString(bt.KeyCurrentGroup) == name {
				bb.Delete(bt.KeyCurrentGroup)
			}
			continue
		}
		if g.Type == GroupAttack && c.threat >= retreatThreshold && g.Objective != "retreating" {
			if err := g.Retreat(home, c.deps.Orders); err != nil {
				slog.Warn("retreat orders failed", "group", name, "error", err)
			}
		}
	}
}

// unassignedIdle returns idle combat units not already claimed by a group.
func (c *Controller) unassignedIdle() []model.Unit {
	claimed := make(map[int]bool)
	for _, g := range c.groups {
		for _, id := range g.UnitIDs {
			claimed[id] = true
		}
	}
	var out []model.Unit
	for _, u := range c.state.Units {
		if u.Idle && !isHarvester(u) && !claimed[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

func (c *Controller) countUnits(unitType string) int {
	n := 0
	for _, u := range c.state.Units {
		if u.Type == unitType {
			n++
		}
	}
	return n
}

func (c *Controller) countBuildings(buildingType string) int {
	n := 0
	for _, b := range c.state.Buildings {
		if b.Type == buildingType {
			n++
		}
	}
	return n
}

// logIdleDiagnostics helps debug "why isn't the AI doing anything?" —
// dumps queue and posture state when a tick dispatches nothing. Throttled.
func (c *Controller) logIdleDiagnostics() {
	if c.state.Tick-c.lastIdleDiagTick < 100 {
		return
	}
	c.lastIdleDiagTick = c.state.Tick

	slog.Warn("idle diagnostics",
		"strategy", c.strategy,
		"threat", c.threat,
		"queued", c.dispatcher.Len(),
		"groups", len(c.groups),
		"cash", c.state.Player.Cash,
		"idleUnits", len(c.unassignedIdle()),
		"activeNodes", c.tree.ActiveNodes(),
	)
}
