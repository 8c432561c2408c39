package agent

import (
	"log/slog"

	"github.com/nstehr/arras/bt"
	"github.com/nstehr/arras/command"
	"github.com/nstehr/arras/model"
)

// Logical unit and building identifiers sent to the game host. The host maps
// them to faction-specific types.
const (
	UnitHarvester = "harvester"
	UnitInfantry  = "infantry"
	UnitTank      = "tank"

	BuildingPowerPlant = "power_plant"
	BuildingRefinery   = "refinery"
	BuildingBarracks   = "barracks"
	BuildingWarFactory = "war_factory"
	BuildingTurret     = "turret"
)

// generateCommands runs the generator for the current posture. The defensive
// generator runs unconditionally — defense commands are always considered,
// whatever the posture.
func (c *Controller) generateCommands(report ThreatReport) {
	switch c.strategy {
	case StrategyEconomic:
		c.generateEconomic()
	case StrategyMilitary:
		c.generateMilitary()
	case StrategyExpansion:
		c.generateExpansion()
	case StrategyDefensive:
		// Defensive posture adds nothing beyond the unconditional pass.
	}
	c.generateDefensive(report)
	c.generateScouting()
}

func (c *Controller) generateEconomic() {
	gs := c.state

	if gs.Player.PowerProvided-gs.Player.PowerDrained < lerp(5, 30, c.profile.Economy) {
		c.enqueue(command.TypeConstruct, command.PriorityHigh, map[string]any{
			"building_type": BuildingPowerPlant,
		})
	}

	wantRefineries := 1 + lerp(0, 2, c.profile.Economy)
	if c.countBuildings(BuildingRefinery) < wantRefineries && gs.Player.Cash >= 1400 {
		c.enqueue(command.TypeConstruct, command.PriorityNormal, map[string]any{
			"building_type": BuildingRefinery,
		})
	}

	if c.countUnits(UnitHarvester) < c.countBuildings(BuildingRefinery)*2 && gs.Player.Cash >= 600 {
		c.enqueue(command.TypeTrainUnit, command.PriorityHigh, map[string]any{
			"unit_type": UnitHarvester,
		})
	}
}

func (c *Controller) generateMilitary() {
	gs := c.state
	bb := c.tree.Blackboard()

	if c.countBuildings(BuildingBarracks) == 0 && gs.Player.Cash >= 500 {
		c.enqueue(command.TypeConstruct, command.PriorityHigh, map[string]any{
			"building_type": BuildingBarracks,
		})
		return
	}

	idle := c.unassignedIdle()
	wantArmy := c.profile.AttackGroupSize + lerp(0, 6, c.profile.Aggression)
	if len(idle) < wantArmy && gs.Player.Cash >= 300 {
		unitType := UnitInfantry
		if c.countBuildings(BuildingWarFactory) > 0 && c.profile.Aggression > 0.6 {
			unitType = UnitTank
		}
		c.enqueue(command.TypeTrainUnit, command.PriorityNormal, map[string]any{
			"unit_type": unitType,
		})
	}

	if len(idle) >= c.profile.AttackGroupSize && bb.GetBool(bt.KeyEnemyBaseLocated) {
		if target, ok := bb.GetPosition(bt.KeyEnemyBasePos); ok {
			c.enqueue(command.TypeAttack, command.PriorityHigh, map[string]any{
				"x":    target.X,
				"y":    target.Y,
				"size": c.profile.AttackGroupSize,
			})
		}
	}
}

func (c *Controller) generateExpansion() {
	bb := c.tree.Blackboard()
	last := bb.GetInt(keyLastExpansionTick)
	if last > 0 && c.state.Tick-last < c.profile.ExpansionCooldown {
		return
	}
	if c.state.Player.Cash < 1500 {
		return
	}
	c.enqueue(command.TypeExpand, command.PriorityNormal, map[string]any{
		"building_type": BuildingRefinery,
	})
}

// generateDefensive runs on every generation pass regardless of posture.
func (c *Controller) generateDefensive(report ThreatReport) {
	home := c.deps.Faction.HomeBasePosition()

	if report.Level >= lerpf(0.6, 0.3, c.profile.Defense) {
		c.enqueue(command.TypeDefend, command.PriorityCritical, map[string]any{
			"x":    home.X,
			"y":    home.Y,
			"size": c.profile.DefenseGroupSize,
		})
	}

	if report.Level >= 0.5 && c.state.Player.Cash >= 800 {
		c.enqueue(command.TypeConstruct, command.PriorityHigh, map[string]any{
			"building_type": BuildingTurret,
		})
	}

	for _, b := range c.state.Buildings {
		if b.MaxHP > 0 && float64(b.HP)/float64(b.MaxHP) < 0.5 {
			c.enqueue(command.TypeRepair, command.PriorityNormal, map[string]any{
				"building_id": b.ID,
			})
			break // one repair order per pass
		}
	}
}

// generateScouting converts the tree's recon request into a scout command.
func (c *Controller) generateScouting() {
	bb := c.tree.Blackboard()
	if !bb.GetBool(keyWantScout) {
		return
	}
	bb.Delete(keyWantScout)

	target := c.scoutTarget()
	c.enqueue(command.TypeScout, command.PriorityLow, map[string]any{
		"x":    target.X,
		"y":    target.Y,
		"size": c.profile.ScoutGroupSize,
	})
}

// scoutTarget picks the map corner farthest from home — the most likely place
// for an unseen enemy base.
func (c *Controller) scoutTarget() model.Position {
	home := c.deps.Faction.HomeBasePosition()
	corners := []model.Position{
		{X: 0, Y: 0},
		{X: c.state.MapWidth, Y: 0},
		{X: 0, Y: c.state.MapHeight},
		{X: c.state.MapWidth, Y: c.state.MapHeight},
	}
	best := corners[0]
	bestDist := -1.0
	for _, p := range corners {
		if d := dist(p, home); d > bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

func (c *Controller) enqueue(t command.Type, p command.Priority, params map[string]any) {
	cmd := command.New(t, p, params)
	slog.Debug("command generated", "type", t, "priority", p, "id", cmd.ID)
	c.dispatcher.Enqueue(cmd)
}
