package survival

import (
	"errors"
	"fmt"
	"time"

	"emberside/internal/domain/world"
)

var ErrNilState = errors.New("nil world state")

// ResolveResult carries the settled outcome plus any domain events the
// action raised. Timed outcomes are returned unapplied; the caller
// advances the clock by TickCost and then charges EnergyCost. Instant
// outcomes have already mutated the state by the time this returns.
type ResolveResult struct {
	Outcome Outcome
	Events  []DomainEvent
}

// ResolverService turns one intent into one outcome. Malformed or
// impossible intents settle as failures; the error return is reserved
// for caller bugs.
type ResolverService struct{}

func (svc ResolverService) Resolve(s *WorldState, intent ActionIntent, dice world.Dice, now time.Time) (ResolveResult, error) {
	if s == nil {
		return ResolveResult{}, ErrNilState
	}
	if s.Player.Dead {
		return ResolveResult{Outcome: Failure("You are dead. The forest has already claimed you.")}, nil
	}

	switch intent.Kind {
	case ActionChopWood:
		return svc.resolveChopWood(s, intent, dice, now), nil
	case ActionSplitFirewood:
		return svc.resolveSplitFirewood(s, dice, now), nil
	case ActionKnapStone:
		return svc.resolveKnapStone(s, now), nil
	case ActionLightFire:
		return svc.resolveLightFire(s, dice, now), nil
	case ActionAddFuel:
		return svc.resolveAddFuel(s, intent, now), nil
	case ActionForage:
		return svc.resolveForage(s, dice, now), nil
	case ActionCraft:
		return svc.resolveCraft(s, intent, dice, now), nil
	case ActionEat:
		return svc.resolveEat(s, intent, now), nil
	case ActionDrink:
		return svc.resolveDrink(s, intent), nil
	case ActionSleep:
		return svc.resolveSleep(s), nil
	case ActionWait:
		return svc.resolveWait(intent), nil
	case ActionMove:
		return svc.resolveMove(s, intent), nil
	case ActionEnter:
		return svc.resolveEnter(s, intent), nil
	case ActionExit:
		return svc.resolveExit(s), nil
	case ActionTake:
		return svc.resolveTake(s, intent), nil
	case ActionPut:
		return svc.resolvePut(s, intent), nil
	default:
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't know how to %s.", intent.Kind))}, nil
	}
}

// timedWork builds a timed outcome and taxes it when the player is
// working outdoors under severe weather.
func timedWork(s *WorldState, text string, ticks int, energy float64) Outcome {
	if s.Player.Location.Outdoors() && s.WeatherHere().Severe() {
		ticks += SevereWeatherExtraTicks
		energy += SevereWeatherExtraEnergy
	}
	return Timed(text, ticks, energy)
}

// grantXP awards points and reports any level-up as an event.
func grantXP(s *WorldState, skill string, points int, now time.Time) []DomainEvent {
	gained := s.Player.Skills.Improve(skill, points)
	if gained == 0 {
		return nil
	}
	return []DomainEvent{{
		Type:       EventLevelUp,
		OccurredAt: now,
		Payload: map[string]any{
			"skill":  skill,
			"level":  s.Player.Skills.Level(skill),
			"gained": gained,
		},
	}}
}

// trickleXP rolls the flat practice chance for one bonus point.
func trickleXP(s *WorldState, skill string, dice world.Dice, now time.Time) []DomainEvent {
	if !world.Chance(dice, XPTrickleChance) {
		return nil
	}
	return grantXP(s, skill, 1, now)
}

// skillCheck is the shared success roll: (base + level/2) capped as a
// percentage.
func skillCheck(s *WorldState, skill string, base int, dice world.Dice) bool {
	chance := float64(base+s.Player.Skills.Level(skill)/2) / 100.0
	return world.Chance(dice, chance)
}
