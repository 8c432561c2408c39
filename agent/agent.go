package agent

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nstehr/arras/ipc"
	"github.com/nstehr/arras/model"
)

// Agent owns the decision-making for a single faction session: one
// connection, one controller, one latest game state.
type Agent struct {
	Conn    *ipc.Connection
	Player  string
	Faction string

	profile    Profile
	debug      bool
	controller *Controller
	latest     model.GameState
}

func New(conn *ipc.Connection, profile Profile, debug bool) *Agent {
	return &Agent{Conn: conn, profile: profile, debug: debug}
}

// HandleHello completes the handshake: identify the player, build the
// controller around the home base position the game reports.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return nil, fmt.Errorf("unmarshal hello: %w", err)
	}

	a.Player = hello.Player
	a.Faction = hello.Faction
	a.Conn.Player = hello.Player

	home := model.Position{X: hello.HomeX, Y: hello.HomeY}
	faction := newIPCFaction(a.Conn, a.state, home)
	controller, err := NewController(a.profile, Deps{
		Faction:   faction,
		Orders:    faction,
		Resources: stateResources{state: a.state},
		Tech:      stateTech{state: a.state},
	})
	if err != nil {
		return nil, fmt.Errorf("build controller: %w", err)
	}
	controller.SetDebug(a.debug)
	a.controller = controller

	slog.Info("player identified",
		"player", a.Player, "faction", a.Faction,
		"home", home, "profile", a.profile.Name)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok"})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleGameState runs one decision tick against the incoming snapshot.
func (a *Agent) HandleGameState(env ipc.Envelope) (*ipc.Envelope, error) {
	var gs model.GameState
	if err := json.Unmarshal(env.Data, &gs); err != nil {
		return nil, fmt.Errorf("unmarshal game state: %w", err)
	}
	if a.controller == nil {
		return nil, fmt.Errorf("game state before hello handshake")
	}

	a.latest = gs
	a.controller.Update(gs)

	slog.Debug("tick processed",
		"player", a.Player,
		"tick", gs.Tick,
		"strategy", a.controller.Strategy(),
		"units", len(gs.Units),
		"enemies", len(gs.Enemies),
	)
	return nil, nil
}

func (a *Agent) state() model.GameState { return a.latest }
