package model

// Position is a map coordinate in cell space.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type GameState struct {
	Tick       int        `json:"tick"`
	Player     Player     `json:"player"`
	Buildings  []Building `json:"buildings"`
	Units      []Unit     `json:"units"`
	Enemies    []Enemy    `json:"enemies"`
	Researched []string   `json:"researched"`
	MapWidth   int        `json:"mapWidth"`
	MapHeight  int        `json:"mapHeight"`
}

type Player struct {
	Name             string `json:"name"`
	Cash             int    `json:"cash"`
	Resources        int    `json:"resources"`
	ResourceCapacity int    `json:"resourceCapacity"`
	PowerProvided    int    `json:"powerProvided"`
	PowerDrained     int    `json:"powerDrained"`
}

type Unit struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
	Idle  bool   `json:"idle"`
	Speed int    `json:"speed"`
}

func (u Unit) TypeName() string { return u.Type }

func (u Unit) Pos() Position { return Position{X: u.X, Y: u.Y} }

type Building struct {
	ID    int    `json:"id"`
	Type  string `json:"type"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"maxHp"`
}

func (b Building) TypeName() string { return b.Type }

func (b Building) Pos() Position { return Position{X: b.X, Y: b.Y} }

type Enemy struct {
	ID       int    `json:"id"`
	Owner    string `json:"owner"`
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"maxHp"`
	Building bool   `json:"building"`
}

func (e Enemy) TypeName() string { return e.Type }

func (e Enemy) Pos() Position { return Position{X: e.X, Y: e.Y} }
