package ipc

// Outbound command type constants — must stay in sync with the game-side
// command executor.
const (
	TypeTrainUnit      = "train_unit"
	TypeConstruct      = "construct"
	TypeAttackMove     = "attack_move"
	TypeMove           = "move"
	TypeSetRally       = "set_rally"
	TypeRepairBuilding = "repair_building"
)

type TrainUnitCommand struct {
	UnitType string `json:"unit_type"`
	Count    int    `json:"count,omitempty"`
}

type ConstructCommand struct {
	BuildingType string `json:"building_type"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
}

type AttackMoveCommand struct {
	ActorIDs []int `json:"actor_ids"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
}

type MoveCommand struct {
	ActorIDs []int `json:"actor_ids"`
	X        int   `json:"x"`
	Y        int   `json:"y"`
}

type SetRallyCommand struct {
	ActorID int `json:"actor_id"`
	X       int `json:"x"`
	Y       int `json:"y"`
}

type RepairBuildingCommand struct {
	ActorID int `json:"actor_id"`
}
