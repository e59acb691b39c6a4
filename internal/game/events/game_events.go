package events

import (
	"time"

	"github.com/strategic-conquest/engine/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted      = "game.started"
	TypeGameEnded        = "game.ended"
	TypeTurnEnded        = "turn.ended"
	TypeArmyMoved        = "army.moved"
	TypeArmySplit        = "army.split"
	TypeArmiesMerged     = "army.merged"
	TypeArmyRetreated    = "army.retreated"
	TypeArmyEliminated   = "army.eliminated"
	TypeCombatResolved   = "combat.resolved"
	TypePlayerEliminated = "player.eliminated"
	TypeScoreChanged     = "score.changed"
	TypeSupplyChecked    = "supply.checked"
)

// Score change reasons carried on ScoreChangedEvent
const (
	ScoreReasonElimination = "elimination"
	ScoreReasonFortControl = "fort_control"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	NumPlayers int
	MapWidth   int
	MapHeight  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, numPlayers, width, height int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
		NumPlayers: numPlayers,
		MapWidth:   width,
		MapHeight:  height,
	}
}

// GameEndedEvent is published when a game ends
type GameEndedEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Winner    int
	FinalTurn int
	Duration  time.Duration
	Scores    map[int]int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner, finalTurn int, duration time.Duration, scores map[int]int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			Turn: finalTurn,
		},
		Winner:    winner,
		FinalTurn: finalTurn,
		Duration:  duration,
		Scores:    scores,
	}
}

// TurnEndedEvent is published when a player's turn completes
type TurnEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	PlayerID   int
	TurnNumber int
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, playerID, turn int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTurnEnded,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID:   playerID,
		TurnNumber: turn,
	}
}

// ArmyMovedEvent is published when an army moves to a new position
type ArmyMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	From     core.Position
	To       core.Position
	Strength int
}

// NewArmyMovedEvent creates a new ArmyMovedEvent
func NewArmyMovedEvent(gameID string, playerID int, from, to core.Position, strength, turn int) *ArmyMovedEvent {
	return &ArmyMovedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeArmyMoved,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		From:     from,
		To:       to,
		Strength: strength,
	}
}

// ArmySplitEvent is published when an army detaches a new force
type ArmySplitEvent struct {
	BaseEvent
	Metadata          EventMetadata
	PlayerID          int
	Position          core.Position
	DetachedStrength  int
	DetachedFood      int
	RemainingStrength int
	RemainingFood     int
}

// NewArmySplitEvent creates a new ArmySplitEvent
func NewArmySplitEvent(gameID string, playerID int, pos core.Position, detachedStrength, detachedFood, remainingStrength, remainingFood, turn int) *ArmySplitEvent {
	return &ArmySplitEvent{
		BaseEvent: BaseEvent{
			EventType: TypeArmySplit,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID:          playerID,
		Position:          pos,
		DetachedStrength:  detachedStrength,
		DetachedFood:      detachedFood,
		RemainingStrength: remainingStrength,
		RemainingFood:     remainingFood,
	}
}

// ArmiesMergedEvent is published when two armies combine into one
type ArmiesMergedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	Position core.Position
	Strength int
	Food     int
}

// NewArmiesMergedEvent creates a new ArmiesMergedEvent
func NewArmiesMergedEvent(gameID string, playerID int, pos core.Position, strength, food, turn int) *ArmiesMergedEvent {
	return &ArmiesMergedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeArmiesMerged,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		Position: pos,
		Strength: strength,
		Food:     food,
	}
}

// ArmyRetreatedEvent is published when an army falls back to its headquarters
type ArmyRetreatedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	From     core.Position
	To       core.Position
}

// NewArmyRetreatedEvent creates a new ArmyRetreatedEvent
func NewArmyRetreatedEvent(gameID string, playerID int, from, to core.Position, turn int) *ArmyRetreatedEvent {
	return &ArmyRetreatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeArmyRetreated,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		From:     from,
		To:       to,
	}
}

// ArmyEliminatedEvent is published when an army is destroyed. Strength is
// the army's strength before the damage that destroyed it.
type ArmyEliminatedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	Position core.Position
	Strength int
}

// NewArmyEliminatedEvent creates a new ArmyEliminatedEvent
func NewArmyEliminatedEvent(gameID string, playerID int, pos core.Position, strength, turn int) *ArmyEliminatedEvent {
	return &ArmyEliminatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeArmyEliminated,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		Position: pos,
		Strength: strength,
	}
}

// CombatResolvedEvent is published for each attacker/defender pair at a
// contact position. SizePenalty is the size-difference term; it is reported
// for observability but is not part of the applied damage.
type CombatResolvedEvent struct {
	BaseEvent
	Metadata         EventMetadata
	Location         core.Position
	AttackerID       int
	DefenderID       int
	AttackerStrength int
	DefenderStrength int
	Damage           int
	SizePenalty      float64
	ArmiesEliminated int
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent
func NewCombatResolvedEvent(gameID string, location core.Position, attackerID, defenderID, attackerStrength, defenderStrength, damage int, sizePenalty float64, armiesEliminated, turn int) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeCombatResolved,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: attackerID,
			Turn:     turn,
		},
		Location:         location,
		AttackerID:       attackerID,
		DefenderID:       defenderID,
		AttackerStrength: attackerStrength,
		DefenderStrength: defenderStrength,
		Damage:           damage,
		SizePenalty:      sizePenalty,
		ArmiesEliminated: armiesEliminated,
	}
}

// PlayerEliminatedEvent is published when a player runs out of armies
type PlayerEliminatedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(gameID string, playerID, turn int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent: BaseEvent{
			EventType: TypePlayerEliminated,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
	}
}

// ScoreChangedEvent is published when a player's score changes
type ScoreChangedEvent struct {
	BaseEvent
	Metadata EventMetadata
	PlayerID int
	Delta    int
	NewScore int
	Reason   string
}

// NewScoreChangedEvent creates a new ScoreChangedEvent
func NewScoreChangedEvent(gameID string, playerID, delta, newScore int, reason string, turn int) *ScoreChangedEvent {
	return &ScoreChangedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeScoreChanged,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID: playerID,
		Delta:    delta,
		NewScore: newScore,
		Reason:   reason,
	}
}

// SupplyCheckedEvent is published per player at end of turn with the
// outcome of the advisory supply check
type SupplyCheckedEvent struct {
	BaseEvent
	Metadata        EventMetadata
	PlayerID        int
	SuppliedCount   int
	UnsuppliedCount int
}

// NewSupplyCheckedEvent creates a new SupplyCheckedEvent
func NewSupplyCheckedEvent(gameID string, playerID, supplied, unsupplied, turn int) *SupplyCheckedEvent {
	return &SupplyCheckedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeSupplyChecked,
			Time:      time.Now(),
			Game:      gameID,
		},
		Metadata: EventMetadata{
			PlayerID: playerID,
			Turn:     turn,
		},
		PlayerID:        playerID,
		SuppliedCount:   supplied,
		UnsuppliedCount: unsupplied,
	}
}
