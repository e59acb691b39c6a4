package events_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strategic-conquest/engine/internal/game/core"
	"github.com/strategic-conquest/engine/internal/game/events"
)

func TestEventConstructorsSetTypeAndGame(t *testing.T) {
	loc := core.NewPosition(4, 7)

	cases := []struct {
		name     string
		event    events.Event
		wantType string
	}{
		{"GameStarted", events.NewGameStartedEvent("g", 2, 20, 20), events.TypeGameStarted},
		{"GameEnded", events.NewGameEndedEvent("g", 1, 100, time.Second, nil), events.TypeGameEnded},
		{"TurnEnded", events.NewTurnEndedEvent("g", 0, 3), events.TypeTurnEnded},
		{"ArmyMoved", events.NewArmyMovedEvent("g", 0, loc, core.NewPosition(5, 7), 30, 3), events.TypeArmyMoved},
		{"ArmySplit", events.NewArmySplitEvent("g", 0, loc, 10, 20, 40, 80, 3), events.TypeArmySplit},
		{"ArmiesMerged", events.NewArmiesMergedEvent("g", 0, loc, 50, 100, 3), events.TypeArmiesMerged},
		{"ArmyRetreated", events.NewArmyRetreatedEvent("g", 0, loc, core.NewPosition(1, 1), 3), events.TypeArmyRetreated},
		{"ArmyEliminated", events.NewArmyEliminatedEvent("g", 1, loc, 20, 3), events.TypeArmyEliminated},
		{"CombatResolved", events.NewCombatResolvedEvent("g", loc, 0, 1, 30, 40, 4, 0.025, 0, 3), events.TypeCombatResolved},
		{"PlayerEliminated", events.NewPlayerEliminatedEvent("g", 1, 3), events.TypePlayerEliminated},
		{"ScoreChanged", events.NewScoreChangedEvent("g", 0, 10, 25, events.ScoreReasonElimination, 3), events.TypeScoreChanged},
		{"SupplyChecked", events.NewSupplyCheckedEvent("g", 0, 3, 1, 3), events.TypeSupplyChecked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantType, tc.event.Type())
			assert.Equal(t, "g", tc.event.GameID())
			assert.False(t, tc.event.Timestamp().IsZero())
		})
	}
}

func TestCombatResolvedEventFields(t *testing.T) {
	loc := core.NewPosition(4, 7)
	e := events.NewCombatResolvedEvent("g", loc, 0, 1, 30, 40, 4, 0.025, 1, 9)

	assert.Equal(t, loc, e.Location)
	assert.Equal(t, 0, e.AttackerID)
	assert.Equal(t, 1, e.DefenderID)
	assert.Equal(t, 30, e.AttackerStrength)
	assert.Equal(t, 40, e.DefenderStrength)
	assert.Equal(t, 4, e.Damage)
	assert.Equal(t, 0.025, e.SizePenalty)
	assert.Equal(t, 1, e.ArmiesEliminated)
	assert.Equal(t, 0, e.Metadata.PlayerID, "Metadata player should be the attacker")
	assert.Equal(t, 9, e.Metadata.Turn)
}

func TestScoreChangedEventFields(t *testing.T) {
	e := events.NewScoreChangedEvent("g", 2, 10, 35, events.ScoreReasonElimination, 12)

	assert.Equal(t, 2, e.PlayerID)
	assert.Equal(t, 10, e.Delta)
	assert.Equal(t, 35, e.NewScore)
	assert.Equal(t, events.ScoreReasonElimination, e.Reason)
	assert.Equal(t, 12, e.Metadata.Turn)
}

func TestArmySplitEventFields(t *testing.T) {
	pos := core.NewPosition(2, 3)
	e := events.NewArmySplitEvent("g", 1, pos, 10, 30, 40, 70, 5)

	assert.Equal(t, 1, e.PlayerID)
	assert.Equal(t, pos, e.Position)
	assert.Equal(t, 10, e.DetachedStrength)
	assert.Equal(t, 30, e.DetachedFood)
	assert.Equal(t, 40, e.RemainingStrength)
	assert.Equal(t, 70, e.RemainingFood)
}
