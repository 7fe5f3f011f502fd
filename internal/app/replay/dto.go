package replay

import "emberside/internal/domain/survival"

type Request struct {
	WorldID      string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	WorldID string                 `json:"world_id"`
	Events  []survival.DomainEvent `json:"events"`
	Summary JourneySummary         `json:"summary"`
}

// JourneySummary condenses an event window into the shape a death
// screen or a run report needs.
type JourneySummary struct {
	ActionsSettled      int      `json:"actions_settled"`
	TicksAdvanced       int      `json:"ticks_advanced"`
	LastDay             int      `json:"last_day"`
	FiresDied           int      `json:"fires_died"`
	LevelUps            []string `json:"level_ups,omitempty"`
	BlueprintsCompleted []string `json:"blueprints_completed,omitempty"`
	Died                bool     `json:"died"`
	DeathCause          string   `json:"death_cause,omitempty"`
}
