package agent

import (
	"math"

	"github.com/nstehr/arras/model"
)

// ThreatReport is the outcome of one assessment pass. Level is 0..1 and is
// published to the blackboard; the flags drive strategy switching.
type ThreatReport struct {
	Level          float64
	HeavyLosses    bool
	EconomyCrisis  bool
	EnemyBaseFound bool
	EnemyBasePos   model.Position
}

// threatSnapshot captures the diffable fields from one game state tick.
type threatSnapshot struct {
	buildingIDs    map[int]bool
	combatIDs      map[int]bool
	harvesterCount int
	cash           int
}

// threat tuning. Proximity dominates: enemies inside the home radius are an
// immediate problem regardless of historical losses.
const (
	threatDecay          = 0.95
	threatHomeRadius     = 20.0
	threatPerNearbyEnemy = 0.1
	threatNearbyFloor    = 0.3
	threatBuildingLost   = 0.6
	threatHeavyLossFloor = 0.8
	heavyLossMinArmy     = 6
	heavyLossFraction    = 0.5
)

// ThreatAssessor diffs consecutive game states to estimate how much danger
// the faction is in. The level decays each pass and is pushed back up by
// enemy proximity, combat losses and building losses.
type ThreatAssessor struct {
	prev      *threatSnapshot
	level     float64
	baseKnown bool
	basePos   model.Position
}

func (ta *ThreatAssessor) Assess(gs model.GameState, home model.Position) ThreatReport {
	cur := takeThreatSnapshot(gs)
	report := ThreatReport{}

	ta.level *= threatDecay

	near := 0
	for _, e := range gs.Enemies {
		if dist(e.Pos(), home) <= threatHomeRadius {
			near++
		}
	}
	if near > 0 {
		ta.level = math.Max(ta.level, math.Min(1, threatNearbyFloor+threatPerNearbyEnemy*float64(near)))
	}

	if ta.prev != nil {
		lost := countMissing(ta.prev.combatIDs, cur.combatIDs)
		if len(ta.prev.combatIDs) >= heavyLossMinArmy &&
			float64(lost) > heavyLossFraction*float64(len(ta.prev.combatIDs)) {
			report.HeavyLosses = true
			ta.level = math.Max(ta.level, threatHeavyLossFloor)
		}

		if countMissing(ta.prev.buildingIDs, cur.buildingIDs) > 0 {
			ta.level = math.Max(ta.level, threatBuildingLost)
		}

		if ta.prev.harvesterCount > 0 && cur.harvesterCount == 0 {
			report.EconomyCrisis = true
		} else if ta.prev.cash > 1000 && cur.cash < 200 {
			report.EconomyCrisis = true
		}
	}

	// First enemy building sighting pins the enemy base location.
	if !ta.baseKnown {
		for _, e := range gs.Enemies {
			if e.Building {
				ta.baseKnown = true
				ta.basePos = e.Pos()
				break
			}
		}
	}
	if ta.baseKnown {
		report.EnemyBaseFound = true
		report.EnemyBasePos = ta.basePos
	}

	ta.prev = &cur
	report.Level = ta.level
	return report
}

func takeThreatSnapshot(gs model.GameState) threatSnapshot {
	snap := threatSnapshot{
		buildingIDs: make(map[int]bool, len(gs.Buildings)),
		combatIDs:   make(map[int]bool),
		cash:        gs.Player.Cash + gs.Player.Resources,
	}
	for _, b := range gs.Buildings {
		snap.buildingIDs[b.ID] = true
	}
	for _, u := range gs.Units {
		if isHarvester(u) {
			snap.harvesterCount++
			continue
		}
		snap.combatIDs[u.ID] = true
	}
	return snap
}

func isHarvester(u model.Unit) bool {
	return u.Type == "harvester" || u.Type == "harv"
}

// countMissing returns how many IDs in prev are absent from cur.
func countMissing(prev, cur map[int]bool) int {
	n := 0
	for id := range prev {
		if !cur[id] {
			n++
		}
	}
	return n
}

func dist(a, b model.Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
