package stateview

import (
	"math"

	"emberside/internal/domain/survival"
)

const ticksToComfortCap = 60

// WarmthDriftEstimate forecasts where the easing model is taking the
// survivor's warmth if nothing changes.
type WarmthDriftEstimate struct {
	IsCooling      bool     `json:"is_cooling"`
	PerTick        float64  `json:"per_tick"`
	Target         float64  `json:"target"`
	TicksToComfort int      `json:"ticks_to_comfort"`
	Causes         []string `json:"causes"`
}

// EstimateWarmthDrift mirrors one step of the easing rule without
// touching the vitals, then counts how long until the comfort band.
func EstimateWarmthDrift(v survival.Vitals, ambientTemp float64) WarmthDriftEstimate {
	target := clamp(ambientTemp + survival.ComfortTargetOffset)
	perTick := (target - v.Warmth) * survival.WarmthEaseRate

	causes := make([]string, 0, 2)
	if perTick < 0 {
		causes = append(causes, "COLD_AMBIENT")
	}
	if target > survival.ComfortBandHigh {
		causes = append(causes, "HOT_AMBIENT")
	}

	return WarmthDriftEstimate{
		IsCooling:      perTick < 0,
		PerTick:        perTick,
		Target:         target,
		TicksToComfort: ticksToComfort(v.Warmth, target),
		Causes:         causes,
	}
}

// ticksToComfort runs the easing forward until warmth sits inside the
// comfort band. A target outside the band never settles, so the count
// caps out.
func ticksToComfort(warmth, target float64) int {
	if inComfortBand(warmth) {
		return 0
	}
	for i := 1; i <= ticksToComfortCap; i++ {
		warmth += (target - warmth) * survival.WarmthEaseRate
		if inComfortBand(warmth) {
			return i
		}
	}
	return ticksToComfortCap
}

func inComfortBand(warmth float64) bool {
	return warmth >= survival.ComfortBandLow && warmth <= survival.ComfortBandHigh
}

func clamp(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}
