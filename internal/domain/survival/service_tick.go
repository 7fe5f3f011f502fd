package survival

import (
	"time"

	"emberside/internal/domain/world"
)

// FireDiedMessage is surfaced when the fireplace burns out on its own.
const FireDiedMessage = "The fire dies down, leaving only faint wisps of smoke."

// TickResult is everything one tick of the simulation produced.
type TickResult struct {
	Events   []DomainEvent
	Messages []string
}

// TickService advances the world by whole ticks. Time only moves
// through here; there is no background clock, so a world nobody pokes
// stays frozen between calls.
type TickService struct{}

// Advance runs exactly one tick: the clock steps, weather may shift,
// wildlife stirs, the fire burns down, trees and forage regrow and the
// survivor's body adjusts to the ambient temperature.
func (TickService) Advance(s *WorldState, dice world.Dice, now time.Time) TickResult {
	var res TickResult

	s.Clock.AdvanceTick()
	s.Weather.MaybeResample(s.Clock.Tick, dice)

	phase := s.Clock.Phase()
	for i := range s.Wildlife {
		s.Wildlife[i].Update(phase, s.Terrain, s.Weather, dice)
	}

	if s.Fireplace.BurnTick() {
		res.Events = append(res.Events, DomainEvent{
			Type:       EventFireDied,
			OccurredAt: now,
			Payload:    map[string]any{"tick": s.Clock.Tick},
		})
		res.Messages = append(res.Messages, FireDiedMessage)
	}

	for i := range s.Trees {
		s.Trees[i].TickGrowth(dice)
	}
	if s.LivingTreeCount() <= 5 {
		s.SpawnTree(dice)
	}

	for i := range s.ForageNodes {
		s.ForageNodes[i].TickRegen(s.Terrain.BiomeAt(s.ForageNodes[i].Position), dice)
	}

	s.Player.Vitals.EaseWarmth(s.AmbientTemperature())
	s.Player.Vitals.DriftMood()

	res.Events = append(res.Events, collapseEvents(s, now)...)

	s.Touch(now)
	return res
}

// AdvanceBy runs n ticks back to back and pools their output. Ticking
// stops early if the survivor dies along the way.
func (svc TickService) AdvanceBy(s *WorldState, n int, dice world.Dice, now time.Time) TickResult {
	var res TickResult
	for i := 0; i < n; i++ {
		step := svc.Advance(s, dice, now)
		res.Events = append(res.Events, step.Events...)
		res.Messages = append(res.Messages, step.Messages...)
		if s.Player.Dead {
			break
		}
	}
	return res
}

func collapseEvents(s *WorldState, now time.Time) []DomainEvent {
	if s.Player.Dead || s.Player.Vitals.Health > 0 {
		return nil
	}
	s.MarkDead(DeathCauseInjury)
	return []DomainEvent{{
		Type:       EventPlayerDied,
		OccurredAt: now,
		Payload: map[string]any{
			"cause": string(s.Player.DeathCause),
			"day":   s.Clock.Day,
			"tick":  s.Clock.Tick,
		},
	}}
}
