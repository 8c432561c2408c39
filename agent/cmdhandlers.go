package agent

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/arras/bt"
	"github.com/nstehr/arras/command"
	"github.com/nstehr/arras/model"
)

// registerHandlers wires one execution handler per command type onto the
// dispatcher. Handlers translate parameters into calls on the external
// collaborators or mutate a unit group; they never enqueue further commands.
func (c *Controller) registerHandlers() {
	c.dispatcher.RegisterHandler(command.TypeTrainUnit, c.handleTrainUnit)
	c.dispatcher.RegisterHandler(command.TypeConstruct, c.handleConstruct)
	c.dispatcher.RegisterHandler(command.TypeAttack, c.handleAttack)
	c.dispatcher.RegisterHandler(command.TypeDefend, c.handleDefend)
	c.dispatcher.RegisterHandler(command.TypeScout, c.handleScout)
	c.dispatcher.RegisterHandler(command.TypeExpand, c.handleExpand)
	c.dispatcher.RegisterHandler(command.TypeRepair, c.handleRepair)
}

func (c *Controller) handleTrainUnit(cmd command.Command) error {
	unitType := cmd.StringParam("unit_type")
	if unitType == "" {
		return fmt.Errorf("train command missing unit_type")
	}
	if !c.deps.Faction.TrainUnit(unitType) {
		slog.Warn("train unit rejected", "unit", unitType)
	}
	return nil
}

func (c *Controller) handleConstruct(cmd command.Command) error {
	buildingType := cmd.StringParam("building_type")
	if buildingType == "" {
		return fmt.Errorf("construct command missing building_type")
	}
	pos := c.placementPosition(cmd)
	if !c.deps.Faction.BuildBuilding(buildingType, pos) {
		slog.Warn("construction rejected", "building", buildingType)
	}
	return nil
}

func (c *Controller) handleAttack(cmd command.Command) error {
	target := model.Position{X: cmd.IntParam("x"), Y: cmd.IntParam("y")}
	size := cmd.IntParam("size")
	if size <= 0 {
		size = c.profile.AttackGroupSize
	}

	c.groupSeq++
	g := NewUnitGroup(fmt.Sprintf("attack-%d", c.groupSeq), GroupAttack)
	g.Target = target
	if g.Fill(c.unassignedIdle(), size, false) == 0 {
		slog.Warn("attack ordered with no units available", "target", target)
		return nil
	}
	c.groups[g.Name] = g

	bb := c.tree.Blackboard()
	bb.Set(bt.KeyCurrentGroup, g.Name)
	bb.Set(bt.KeyAttackTarget, target)
	slog.Info("attack group formed", "group", g.Name, "units", len(g.UnitIDs), "target", target)
	return g.ExecuteOrders(c.deps.Orders)
}

func (c *Controller) handleDefend(cmd command.Command) error {
	pos := model.Position{X: cmd.IntParam("x"), Y: cmd.IntParam("y")}
	size := cmd.IntParam("size")
	if size <= 0 {
		size = c.profile.DefenseGroupSize
	}

	g, ok := c.groups["defense"]
	if !ok {
		g = NewUnitGroup("defense", GroupDefense)
		c.groups[g.Name] = g
	}
	g.Position = pos
	g.Fill(c.unassignedIdle(), size, false)
	if g.Empty() {
		return nil
	}
	c.tree.Blackboard().Set(bt.KeyCurrentGroup, g.Name)
	return g.ExecuteOrders(c.deps.Orders)
}

func (c *Controller) handleScout(cmd command.Command) error {
	target := model.Position{X: cmd.IntParam("x"), Y: cmd.IntParam("y")}
	size := cmd.IntParam("size")
	if size <= 0 {
		size = c.profile.ScoutGroupSize
	}

	g, ok := c.groups["scout"]
	if !ok {
		g = NewUnitGroup("scout", GroupScout)
		c.groups[g.Name] = g
	}
	g.Target = target
	g.Fill(c.unassignedIdle(), size, true)
	if g.Empty() {
		delete(c.groups, g.Name)
		return nil
	}
	c.tree.Blackboard().Set(bt.KeyScoutGroup, g.Name)
	slog.Info("scout group dispatched", "units", len(g.UnitIDs), "target", target)
	return g.ExecuteOrders(c.deps.Orders)
}

func (c *Controller) handleExpand(cmd command.Command) error {
	buildingType := cmd.StringParam("building_type")
	if buildingType == "" {
		buildingType = BuildingRefinery
	}
	pos := c.expansionPosition()
	if c.deps.Faction.BuildBuilding(buildingType, pos) {
		c.tree.Blackboard().Set(keyLastExpansionTick, c.state.Tick)
		slog.Info("expansion started", "building", buildingType, "pos", pos)
	}
	return nil
}

func (c *Controller) handleRepair(cmd command.Command) error {
	id := cmd.IntParam("building_id")
	if id == 0 {
		return fmt.Errorf("repair command missing building_id")
	}
	return c.deps.Orders.RepairBuilding(id)
}

// placementPosition resolves where a construct command wants its building:
// explicit coordinates when present, otherwise near the home base.
func (c *Controller) placementPosition(cmd command.Command) model.Position {
	if cmd.Params["x"] != nil || cmd.Params["y"] != nil {
		return model.Position{X: cmd.IntParam("x"), Y: cmd.IntParam("y")}
	}
	home := c.deps.Faction.HomeBasePosition()
	// Deterministic spiral-ish offset keyed on how much we own already.
	n := len(c.state.Buildings)
	return model.Position{X: home.X + 2 + n%5, Y: home.Y + 2 + n/5}
}

// expansionPosition steps from home toward the map center, where fresh
// resource fields usually sit.
func (c *Controller) expansionPosition() model.Position {
	home := c.deps.Faction.HomeBasePosition()
	cx, cy := c.state.MapWidth/2, c.state.MapHeight/2
	return model.Position{
		X: home.X + (cx-home.X)/3,
		Y: home.Y + (cy-home.Y)/3,
	}
}
