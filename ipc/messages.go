package ipc

// Message type constants — must stay in sync with the game-side bridge.
const (
	TypeHello     = "hello"
	TypeAck       = "ack"
	TypeGameState = "game_state"
)

type HelloMessage struct {
	Player    string `json:"player"`
	Faction   string `json:"faction"`
	HomeX     int    `json:"homeX"`
	HomeY     int    `json:"homeY"`
	MapWidth  int    `json:"mapWidth"`
	MapHeight int    `json:"mapHeight"`
}

type AckMessage struct {
	Status string `json:"status"`
}
