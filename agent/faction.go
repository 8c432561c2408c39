package agent

import (
	"log/slog"
	"strings"

	"github.com/nstehr/arras/ipc"
	"github.com/nstehr/arras/model"
)

// FactionController is the narrow capability surface through which the core
// drives the game. The real implementation talks over ipc; tests substitute
// an in-memory fake.
type FactionController interface {
	TrainUnit(unitType string) bool
	BuildBuilding(buildingType string, pos model.Position) bool
	HomeBasePosition() model.Position
	UnitsByType(unitType string) []model.Unit
	IdleUnits() []model.Unit
}

// UnitOrders is the minimal movement/target-setting capability used only
// through UnitGroup and the repair handler.
type UnitOrders interface {
	AttackMove(unitIDs []int, target model.Position) error
	MoveTo(unitIDs []int, target model.Position) error
	RepairBuilding(buildingID int) error
}

// ResourceManager reports stockpile amounts by resource name.
type ResourceManager interface {
	ResourceAmount(resource string) float64
}

// TechTree answers research queries.
type TechTree interface {
	IsResearched(techID string) bool
}

// ipcFaction implements FactionController and UnitOrders by translating calls
// into envelopes on the game connection, resolving queries against the latest
// game state snapshot.
type ipcFaction struct {
	conn  *ipc.Connection
	state func() model.GameState
	home  model.Position
}

func newIPCFaction(conn *ipc.Connection, state func() model.GameState, home model.Position) *ipcFaction {
	return &ipcFaction{conn: conn, state: state, home: home}
}

func (f *ipcFaction) TrainUnit(unitType string) bool {
	err := f.conn.Send(ipc.TypeTrainUnit, ipc.TrainUnitCommand{UnitType: unitType, Count: 1})
	if err != nil {
		slog.Warn("train unit send failed", "unit", unitType, "error", err)
		return false
	}
	return true
}

func (f *ipcFaction) BuildBuilding(buildingType string, pos model.Position) bool {
	err := f.conn.Send(ipc.TypeConstruct, ipc.ConstructCommand{
		BuildingType: buildingType,
		X:            pos.X,
		Y:            pos.Y,
	})
	if err != nil {
		slog.Warn("construct send failed", "building", buildingType, "error", err)
		return false
	}
	return true
}

func (f *ipcFaction) HomeBasePosition() model.Position { return f.home }

func (f *ipcFaction) UnitsByType(unitType string) []model.Unit {
	var out []model.Unit
	for _, u := range f.state().Units {
		if strings.EqualFold(u.Type, unitType) {
			out = append(out, u)
		}
	}
	return out
}

func (f *ipcFaction) IdleUnits() []model.Unit {
	var out []model.Unit
	for _, u := range f.state().Units {
		if u.Idle {
			out = append(out, u)
		}
	}
	return out
}

func (f *ipcFaction) AttackMove(unitIDs []int, target model.Position) error {
	return f.conn.Send(ipc.TypeAttackMove, ipc.AttackMoveCommand{
		ActorIDs: unitIDs,
		X:        target.X,
		Y:        target.Y,
	})
}

func (f *ipcFaction) MoveTo(unitIDs []int, target model.Position) error {
	return f.conn.Send(ipc.TypeMove, ipc.MoveCommand{
		ActorIDs: unitIDs,
		X:        target.X,
		Y:        target.Y,
	})
}

func (f *ipcFaction) RepairBuilding(buildingID int) error {
	return f.conn.Send(ipc.TypeRepairBuilding, ipc.RepairBuildingCommand{ActorID: buildingID})
}

// stateResources implements ResourceManager from the latest game state.
type stateResources struct {
	state func() model.GameState
}

func (r stateResources) ResourceAmount(resource string) float64 {
	gs := r.state()
	switch strings.ToLower(resource) {
	case "cash":
		return float64(gs.Player.Cash)
	case "ore":
		return float64(gs.Player.Resources)
	case "power":
		return float64(gs.Player.PowerProvided - gs.Player.PowerDrained)
	}
	return 0
}

// stateTech implements TechTree from the researched list in the game state.
type stateTech struct {
	state func() model.GameState
}

func (t stateTech) IsResearched(techID string) bool {
	for _, id := range t.state().Researched {
		if strings.EqualFold(id, techID) {
			return true
		}
	}
	return false
}
