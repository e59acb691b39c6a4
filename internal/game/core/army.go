package core

import "github.com/strategic-conquest/engine/internal/common"

// MaxArmyStrength is the upper clamp applied when an army is created.
const MaxArmyStrength = 100

// Army is a mobile unit stack owned by a single player. Strength stays
// within [0, MaxArmyStrength] and food never drops below zero at rest;
// the turn engine enforces both after every mutation.
type Army struct {
	PlayerID       int
	Position       Position
	Strength       int
	Food           int
	HasGeneral     bool
	MovedThisTurn  bool
	FoughtThisTurn bool
	Supplied       bool
}

// NewArmy creates an army, clamping strength to [0, MaxArmyStrength]
// and food to a minimum of zero.
func NewArmy(playerID int, pos Position, strength, food int, hasGeneral bool) *Army {
	strength = common.Clamp(strength, 0, MaxArmyStrength)
	food = common.Max(food, 0)
	return &Army{
		PlayerID:   playerID,
		Position:   pos,
		Strength:   strength,
		Food:       food,
		HasGeneral: hasGeneral,
	}
}

// MovementTier buckets strength into speed tiers; lighter armies are
// faster. Tier 4 is the fastest. The tier-to-speed mapping itself lives
// in configuration.
func (a *Army) MovementTier() int {
	switch {
	case a.Strength <= 25:
		return 4
	case a.Strength <= 50:
		return 3
	case a.Strength <= 75:
		return 2
	default:
		return 1
	}
}

// CombatPower is the advisory display strength; a general projects a
// 25% bonus. Damage resolution uses the attrition formula, not this.
func (a *Army) CombatPower() float64 {
	if a.HasGeneral {
		return float64(a.Strength) * 1.25
	}
	return float64(a.Strength)
}

// CanSplit reports whether the army can divide into two viable armies
func (a *Army) CanSplit() bool {
	return a.Strength > 1 && a.Food > 1
}

// ResetTurnFlags clears the per-turn activity markers
func (a *Army) ResetTurnFlags() {
	a.MovedThisTurn = false
	a.FoughtThisTurn = false
}
