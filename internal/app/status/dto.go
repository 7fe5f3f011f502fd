package status

import "emberside/internal/app/stateview"

type Request struct {
	WorldID string
}

type Response struct {
	State       stateview.View                `json:"state"`
	WarmthDrift stateview.WarmthDriftEstimate `json:"warmth_drift"`
}
