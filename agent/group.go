package agent

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"
	"github.com/nstehr/arras/model"
)

// GroupType classifies what a unit group is for.
type GroupType string

const (
	GroupAttack  GroupType = "attack"
	GroupDefense GroupType = "defense"
	GroupScout   GroupType = "scout"
)

// UnitGroup gives units persistent identity across ticks. Without groups the
// controller would re-select units every tick and couldn't hold together an
// attack wave or keep a defense force in reserve. Members are unit IDs, not
// unit snapshots — positions and health are resolved against the latest game
// state when needed.
type UnitGroup struct {
	ID        uuid.UUID
	Name      string
	Type      GroupType
	UnitIDs   []int
	Target    model.Position // attack/scout destination
	Position  model.Position // defense rally point
	Objective string
}

func NewUnitGroup(name string, t GroupType) *UnitGroup {
	return &UnitGroup{
		ID:   uuid.New(),
		Name: name,
		Type: t,
	}
}

// Fill assigns up to count units from the pool, skipping ones already in the
// group. Scout groups prefer fast units, so the pool is sorted by speed first
// when fastFirst is set.
func (g *UnitGroup) Fill(pool []model.Unit, count int, fastFirst bool) int {
	if fastFirst {
		pool = append([]model.Unit(nil), pool...)
		sort.Slice(pool, func(i, j int) bool { return pool[i].Speed > pool[j].Speed })
	}

	members := make(map[int]bool, len(g.UnitIDs))
	for _, id := range g.UnitIDs {
		members[id] = true
	}

	added := 0
	for _, u := range pool {
		if len(g.UnitIDs) >= count {
			break
		}
		if members[u.ID] {
			continue
		}
		g.UnitIDs = append(g.UnitIDs, u.ID)
		added++
	}
	return added
}

func (g *UnitGroup) RemoveUnit(id int) {
	for i, uid := range g.UnitIDs {
		if uid == id {
			g.UnitIDs = append(g.UnitIDs[:i], g.UnitIDs[i+1:]...)
			return
		}
	}
}

// Empty reports whether the group has no surviving members. Empty groups are
// defunct and pruned by the controller on the next update pass.
func (g *UnitGroup) Empty() bool { return len(g.UnitIDs) == 0 }

// Prune drops members no longer present in the alive set (dead or captured).
func (g *UnitGroup) Prune(alive map[int]bool) {
	kept := g.UnitIDs[:0]
	for _, id := range g.UnitIDs {
		if alive[id] {
			kept = append(kept, id)
		}
	}
	g.UnitIDs = kept
}

// ExecuteOrders issues the group's objective to its members. Attack and scout
// groups head for their target; defense groups hold their rally position.
func (g *UnitGroup) ExecuteOrders(orders UnitOrders) error {
	if g.Empty() {
		return nil
	}
	switch g.Type {
	case GroupAttack:
		g.Objective = "attacking"
		return orders.AttackMove(g.UnitIDs, g.Target)
	case GroupDefense:
		g.Objective = "defending"
		return orders.MoveTo(g.UnitIDs, g.Position)
	case GroupScout:
		g.Objective = "scouting"
		return orders.MoveTo(g.UnitIDs, g.Target)
	}
	return nil
}

// Retreat recalls the group to the home base.
func (g *UnitGroup) Retreat(home model.Position, orders UnitOrders) error {
	if g.Empty() {
		return nil
	}
	g.Objective = "retreating"
	slog.Info("group retreating", "group", g.Name, "units", len(g.UnitIDs))
	return orders.MoveTo(g.UnitIDs, home)
}
