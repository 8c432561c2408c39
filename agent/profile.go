package agent

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a difficulty/personality posture: data, not logic. Weights are
// 0.0–1.0; the generators and the built-in tree map them to concrete
// thresholds and group sizes.
type Profile struct {
	Name       string  `yaml:"name"`
	Economy    float64 `yaml:"economy"`
	Aggression float64 `yaml:"aggression"`
	Defense    float64 `yaml:"defense"`
	Scouting   float64 `yaml:"scouting"`
	Expansion  float64 `yaml:"expansion"`

	AttackGroupSize  int `yaml:"attack_group_size"`
	DefenseGroupSize int `yaml:"defense_group_size"`
	ScoutGroupSize   int `yaml:"scout_group_size"`

	// GenerationInterval is the tick gap between command generation passes.
	GenerationInterval int `yaml:"generation_interval"`
	// ExpansionCooldown is the minimum tick gap between expansion attempts.
	ExpansionCooldown int `yaml:"expansion_cooldown"`
}

// DefaultProfile returns a balanced baseline posture.
func DefaultProfile() Profile {
	return Profile{
		Name:               "balanced",
		Economy:            0.5,
		Aggression:         0.5,
		Defense:            0.5,
		Scouting:           0.5,
		Expansion:          0.5,
		AttackGroupSize:    5,
		DefenseGroupSize:   4,
		ScoutGroupSize:     2,
		GenerationInterval: 25,
		ExpansionCooldown:  500,
	}
}

// LoadProfile reads a YAML profile from disk, clamping all values on the way in.
func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	p.Validate()
	return p, nil
}

// Validate clamps all weights and sizes to their valid ranges.
func (p *Profile) Validate() {
	p.Economy = clamp(p.Economy, 0, 1)
	p.Aggression = clamp(p.Aggression, 0, 1)
	p.Defense = clamp(p.Defense, 0, 1)
	p.Scouting = clamp(p.Scouting, 0, 1)
	p.Expansion = clamp(p.Expansion, 0, 1)
	p.AttackGroupSize = clampInt(p.AttackGroupSize, 3, 15)
	p.DefenseGroupSize = clampInt(p.DefenseGroupSize, 2, 10)
	p.ScoutGroupSize = clampInt(p.ScoutGroupSize, 1, 4)
	p.GenerationInterval = clampInt(p.GenerationInterval, 5, 200)
	p.ExpansionCooldown = clampInt(p.ExpansionCooldown, 100, 5000)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// lerp linearly interpolates between min and max by t (0–1), returning an int.
func lerp(min, max int, t float64) int {
	return min + int(math.Round(float64(max-min)*t))
}

// lerpf linearly interpolates between min and max by t (0–1).
func lerpf(min, max, t float64) float64 {
	return min + (max-min)*t
}
