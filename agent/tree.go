package agent

import (
	"github.com/nstehr/arras/bt"
)

// buildTree assembles the built-in decision tree, run once at construction.
//
//	root (Sequence)
//	├── recon (Decorator, never blocks the posture selector)
//	│   └── need-recon (Sequence)
//	│       ├── base-unknown (Inverter ∘ base-located)
//	│       └── request-scout (Action)
//	└── posture (Selector, first match wins)
//	    ├── survive:   threat-critical        → go-defensive
//	    ├── stabilize: economy-strained       → go-economic
//	    ├── strike:    base-located ∧ army-ready → go-military
//	    ├── grow:      no-contact ∧ expansion-ready → go-expansion
//	    └── default-economic
//
// Condition thresholds that depend only on game state are expr sources, so a
// profile tweak or hot-patched expression stays data. Conditions needing the
// profile or controller state are closures.
func (c *Controller) buildTree() (bt.Node, error) {
	threatCritical, err := bt.NewExprCondition("threat-critical", `ThreatLevel() >= 0.6`)
	if err != nil {
		return nil, err
	}
	economyStrained, err := bt.NewExprCondition("economy-strained",
		`PowerExcess() < 10 || UnitCount("harvester") < 2 || Cash() < 500`)
	if err != nil {
		return nil, err
	}
	baseLocated, err := bt.NewExprCondition("base-located", `Flag("EnemyBaseLocated")`)
	if err != nil {
		return nil, err
	}
	baseLocatedForRecon, err := bt.NewExprCondition("base-located-recon", `Flag("EnemyBaseLocated")`)
	if err != nil {
		return nil, err
	}
	noContact, err := bt.NewExprCondition("no-contact", `!EnemiesVisible() && ThreatLevel() < 0.3`)
	if err != nil {
		return nil, err
	}

	armyReady := bt.NewCondition("army-ready", func(bb *bt.Blackboard) (bool, error) {
		return len(c.unassignedIdle()) >= c.profile.AttackGroupSize, nil
	})

	expansionReady := bt.NewCondition("expansion-ready", func(bb *bt.Blackboard) (bool, error) {
		last := bb.GetInt(keyLastExpansionTick)
		if last > 0 && c.state.Tick-last < c.profile.ExpansionCooldown {
			return false, nil
		}
		cash := float64(c.state.Player.Cash)
		if c.deps.Resources != nil {
			cash = c.deps.Resources.ResourceAmount("cash")
		}
		return cash >= 1500 && c.profile.Expansion > 0.2, nil
	})

	requestScout := bt.NewAction("request-scout", func(bb *bt.Blackboard) (bt.Status, error) {
		if c.profile.Scouting > 0 && !bb.Has(bt.KeyScoutGroup) {
			bb.Set(keyWantScout, true)
		}
		return bt.StatusSuccess, nil
	})

	recon := bt.NewDecorator("recon",
		func(child bt.Node) bt.Status {
			// Recon is advisory: run it, but never let it block the posture
			// selection below.
			child.Execute()
			return bt.StatusSuccess
		},
		bt.NewSequence("need-recon",
			bt.NewInverter("base-unknown", baseLocatedForRecon),
			requestScout,
		),
	)

	posture := bt.NewSelector("posture",
		bt.NewSequence("survive", threatCritical, c.postureAction("go-defensive", StrategyDefensive)),
		bt.NewSequence("stabilize", economyStrained, c.postureAction("go-economic", StrategyEconomic)),
		bt.NewSequence("strike", baseLocated, armyReady, c.postureAction("go-military", StrategyMilitary)),
		bt.NewSequence("grow", noContact, expansionReady, c.postureAction("go-expansion", StrategyExpansion)),
		c.postureAction("default-economic", StrategyEconomic),
	)

	return bt.NewSequence("root", recon, posture), nil
}

func (c *Controller) postureAction(name string, s Strategy) *bt.Action {
	return bt.NewAction(name, func(bb *bt.Blackboard) (bt.Status, error) {
		c.setStrategy(s)
		return bt.StatusSuccess, nil
	})
}
