package advance

import (
	"emberside/internal/app/stateview"
	"emberside/internal/domain/survival"
)

type Request struct {
	WorldID string
	Ticks   int
}

type Response struct {
	WorldID        string                 `json:"world_id"`
	TicksRequested int                    `json:"ticks_requested"`
	TicksAdvanced  int                    `json:"ticks_advanced"`
	Events         []survival.DomainEvent `json:"events"`
	Messages       []string               `json:"messages,omitempty"`
	State          stateview.View         `json:"state"`
	SnapshotRef    string                 `json:"snapshot_ref,omitempty"`
}
