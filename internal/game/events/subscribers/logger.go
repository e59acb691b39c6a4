package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/strategic-conquest/engine/internal/game/events"
)

// Logger writes game events to structured logs
type Logger struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLogger creates a new logging subscriber
func NewLogger(id string, logger zerolog.Logger, logLevel zerolog.Level) *Logger {
	return &Logger{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *Logger) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *Logger) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *Logger) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *Logger) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *Logger) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("num_players", e.NumPlayers).
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.TurnEndedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("turn", e.TurnNumber)

	case *events.ArmyMovedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Int("strength", e.Strength)

	case *events.ArmySplitEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Position.X).
			Int("y", e.Position.Y).
			Int("detached_strength", e.DetachedStrength).
			Int("detached_food", e.DetachedFood).
			Int("remaining_strength", e.RemainingStrength).
			Int("remaining_food", e.RemainingFood)

	case *events.ArmiesMergedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Position.X).
			Int("y", e.Position.Y).
			Int("strength", e.Strength).
			Int("food", e.Food)

	case *events.ArmyRetreatedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y)

	case *events.ArmyEliminatedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Position.X).
			Int("y", e.Position.Y).
			Int("strength", e.Strength)

	case *events.CombatResolvedEvent:
		logEvent.
			Int("attacker_id", e.AttackerID).
			Int("defender_id", e.DefenderID).
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Int("attacker_strength", e.AttackerStrength).
			Int("defender_strength", e.DefenderStrength).
			Int("damage", e.Damage).
			Float64("size_penalty", e.SizePenalty).
			Int("armies_eliminated", e.ArmiesEliminated)

	case *events.PlayerEliminatedEvent:
		logEvent.Int("player_id", e.PlayerID)

	case *events.ScoreChangedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("delta", e.Delta).
			Int("new_score", e.NewScore).
			Str("reason", e.Reason)

	case *events.SupplyCheckedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("supplied", e.SuppliedCount).
			Int("unsupplied", e.UnsuppliedCount)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
