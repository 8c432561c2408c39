package bt

import (
	"strings"

	"github.com/nstehr/arras/model"
)

// ConditionEnv wraps the latest game state and the blackboard, exposing the
// helper methods callable from expr condition sources.
type ConditionEnv struct {
	State model.GameState
	Board *Blackboard
}

func envFrom(bb *Blackboard) ConditionEnv {
	env := ConditionEnv{Board: bb}
	if bb != nil {
		if gs, ok := bb.GetGameState(KeyGameState); ok {
			env.State = gs
		}
	}
	return env
}

func (e ConditionEnv) HasUnit(t string) bool {
	for _, u := range e.State.Units {
		if strings.EqualFold(u.Type, t) {
			return true
		}
	}
	return false
}

func (e ConditionEnv) UnitCount(t string) int {
	n := 0
	for _, u := range e.State.Units {
		if strings.EqualFold(u.Type, t) {
			n++
		}
	}
	return n
}

func (e ConditionEnv) HasBuilding(t string) bool {
	for _, b := range e.State.Buildings {
		if strings.EqualFold(b.Type, t) {
			return true
		}
	}
	return false
}

func (e ConditionEnv) BuildingCount(t string) int {
	n := 0
	for _, b := range e.State.Buildings {
		if strings.EqualFold(b.Type, t) {
			n++
		}
	}
	return n
}

func (e ConditionEnv) Cash() int { return e.State.Player.Cash }

func (e ConditionEnv) Resources() int { return e.State.Player.Resources }

func (e ConditionEnv) PowerExcess() int {
	return e.State.Player.PowerProvided - e.State.Player.PowerDrained
}

func (e ConditionEnv) IdleUnitCount() int {
	n := 0
	for _, u := range e.State.Units {
		if u.Idle {
			n++
		}
	}
	return n
}

func (e ConditionEnv) EnemiesVisible() bool { return len(e.State.Enemies) > 0 }

func (e ConditionEnv) EnemyCount() int { return len(e.State.Enemies) }

func (e ConditionEnv) IsResearched(techID string) bool {
	for _, t := range e.State.Researched {
		if strings.EqualFold(t, techID) {
			return true
		}
	}
	return false
}

// ThreatLevel reads the controller-published threat estimate; 0 when unset.
func (e ConditionEnv) ThreatLevel() float64 {
	if e.Board == nil {
		return 0
	}
	return e.Board.GetFloat(KeyThreatLevel)
}

// Flag reads a boolean blackboard key, false when absent.
func (e ConditionEnv) Flag(key string) bool {
	if e.Board == nil {
		return false
	}
	return e.Board.GetBool(key)
}

// Number reads a numeric blackboard key, 0 when absent.
func (e ConditionEnv) Number(key string) float64 {
	if e.Board == nil {
		return 0
	}
	return e.Board.GetFloat(key)
}
