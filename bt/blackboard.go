package bt

import "github.com/nstehr/arras/model"

// Blackboard is the shared key/value store through which nodes exchange state
// with each other and with the owning controller. There is no schema; keys are
// an informal contract between writers and readers, and absence is never an
// error — typed getters return the zero value when a key is missing or holds
// a different type.
//
// Not safe for concurrent use. Everything runs on the single game-update
// thread, matching the tick-driven evaluation model.
type Blackboard struct {
	values map[string]any
}

func NewBlackboard() *Blackboard {
	return &Blackboard{values: make(map[string]any)}
}

func (b *Blackboard) Set(key string, value any) {
	b.values[key] = value
}

func (b *Blackboard) Get(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

func (b *Blackboard) Has(key string) bool {
	_, ok := b.values[key]
	return ok
}

func (b *Blackboard) Delete(key string) {
	delete(b.values, key)
}

func (b *Blackboard) GetString(key string) string {
	if v, ok := b.values[key].(string); ok {
		return v
	}
	return ""
}

func (b *Blackboard) GetBool(key string) bool {
	if v, ok := b.values[key].(bool); ok {
		return v
	}
	return false
}

func (b *Blackboard) GetInt(key string) int {
	if v, ok := b.values[key].(int); ok {
		return v
	}
	return 0
}

func (b *Blackboard) GetFloat(key string) float64 {
	switch v := b.values[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func (b *Blackboard) GetPosition(key string) (model.Position, bool) {
	v, ok := b.values[key].(model.Position)
	return v, ok
}

func (b *Blackboard) GetGameState(key string) (model.GameState, bool) {
	v, ok := b.values[key].(model.GameState)
	return v, ok
}
