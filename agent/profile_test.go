package agent

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rush.yaml")
	doc := `name: rush
aggression: 0.9
economy: 0.2
attack_group_size: 8
generation_interval: 10
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Name != "rush" {
		t.Errorf("name %q", p.Name)
	}
	if p.Aggression != 0.9 || p.Economy != 0.2 {
		t.Errorf("weights not loaded: aggression=%v economy=%v", p.Aggression, p.Economy)
	}
	if p.AttackGroupSize != 8 || p.GenerationInterval != 10 {
		t.Errorf("sizes not loaded: attack=%d interval=%d", p.AttackGroupSize, p.GenerationInterval)
	}
	// Fields absent from the file keep their defaults.
	if p.DefenseGroupSize != DefaultProfile().DefenseGroupSize {
		t.Errorf("defense group size %d, want default", p.DefenseGroupSize)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	p := Profile{
		Aggression:         1.8,
		Economy:            -0.4,
		AttackGroupSize:    100,
		DefenseGroupSize:   0,
		ScoutGroupSize:     9,
		GenerationInterval: 1,
		ExpansionCooldown:  99999,
	}
	p.Validate()

	if p.Aggression != 1 || p.Economy != 0 {
		t.Errorf("weights not clamped: aggression=%v economy=%v", p.Aggression, p.Economy)
	}
	if p.AttackGroupSize != 15 {
		t.Errorf("attack group size %d, want 15", p.AttackGroupSize)
	}
	if p.DefenseGroupSize != 2 {
		t.Errorf("defense group size %d, want 2", p.DefenseGroupSize)
	}
	if p.ScoutGroupSize != 4 {
		t.Errorf("scout group size %d, want 4", p.ScoutGroupSize)
	}
	if p.GenerationInterval != 5 {
		t.Errorf("generation interval %d, want 5", p.GenerationInterval)
	}
	if p.ExpansionCooldown != 5000 {
		t.Errorf("expansion cooldown %d, want 5000", p.ExpansionCooldown)
	}
}

func TestLerpMapsWeightRange(t *testing.T) {
	if got := lerp(5, 15, 0); got != 5 {
		t.Errorf("lerp(5,15,0) = %d", got)
	}
	if got := lerp(5, 15, 1); got != 15 {
		t.Errorf("lerp(5,15,1) = %d", got)
	}
	if got := lerp(0, 6, 0.5); got != 3 {
		t.Errorf("lerp(0,6,0.5) = %d", got)
	}
	if got := lerpf(0.6, 0.3, 1); got != 0.3 {
		t.Errorf("lerpf(0.6,0.3,1) = %v", got)
	}
}
