package action

import (
	"emberside/internal/app/stateview"
	"emberside/internal/domain/survival"
)

type Request struct {
	WorldID        string
	IdempotencyKey string
	Intent         survival.ActionIntent
}

type Response struct {
	WorldID       string                 `json:"world_id"`
	Outcome       survival.Outcome       `json:"outcome"`
	TicksAdvanced int                    `json:"ticks_advanced"`
	Events        []survival.DomainEvent `json:"events"`
	Messages      []string               `json:"messages,omitempty"`
	State         stateview.View         `json:"state"`
	Replayed      bool                   `json:"replayed,omitempty"`
}
