package survival

import (
	"fmt"
	"strings"
	"time"

	"emberside/internal/domain/world"
)

func parseRecipe(input string) (RecipeID, bool) {
	key := strings.ReplaceAll(normalizeName(input), " ", "_")
	if key == "" {
		return "", false
	}
	id := RecipeID(key)
	if _, ok := RecipeFor(id); ok {
		return id, true
	}
	return "", false
}

func (ResolverService) resolveCraft(s *WorldState, intent ActionIntent, dice world.Dice, now time.Time) ResolveResult {
	if item, ok := ResolveItemName(intent.Recipe); ok && item == ItemCookedFish {
		return cookFish(s, dice, now)
	}

	recipeID, named := parseRecipe(intent.Recipe)
	if s.Player.Project == nil {
		if !named {
			if strings.TrimSpace(intent.Recipe) == "" {
				return ResolveResult{Outcome: Failure("Name what you want to craft.")}
			}
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You don't know a way to make %q.", intent.Recipe))}
		}
		if !recipeUnlocked(recipeID, s.Player.Skills) {
			return ResolveResult{Outcome: Failure("You don't yet have the skill to attempt that.")}
		}
		project, _ := StartBlueprint(recipeID)
		s.Player.Project = project
	} else if named && recipeID != s.Player.Project.Recipe {
		return ResolveResult{Outcome: Failure(fmt.Sprintf("You are already partway through a %s. Finish that first.",
			strings.ReplaceAll(string(s.Player.Project.Recipe), "_", " ")))}
	}

	project := s.Player.Project
	recipe, _ := RecipeFor(project.Recipe)
	label := strings.ReplaceAll(string(project.Recipe), "_", " ")

	var fed []string
	for _, want := range project.Missing() {
		have := s.Player.Inventory.Count(want.Item)
		if have == 0 {
			continue
		}
		n := want.Count
		if have < n {
			n = have
		}
		if accepted := project.AddMaterial(want.Item, n); accepted > 0 {
			s.Player.Inventory.Remove(want.Item, accepted)
			fed = append(fed, fmt.Sprintf("%d %s", accepted, DisplayName(want.Item)))
		}
	}

	if !project.Complete() {
		var miss []string
		for _, want := range project.Missing() {
			miss = append(miss, fmt.Sprintf("%d %s", want.Count, DisplayName(want.Item)))
		}
		if len(fed) == 0 {
			return ResolveResult{Outcome: Failure(fmt.Sprintf("You still need %s for the %s.", joinList(miss), label))}
		}
		text := fmt.Sprintf("You work %s into the half-built %s. Still needed: %s.",
			joinList(fed), label, joinList(miss))
		return ResolveResult{Outcome: Timed(text, 1, 2)}
	}

	output := recipe.Output
	if !s.Player.Inventory.CanCarry(output, 1) {
		return ResolveResult{Outcome: Failure("You need to lighten your pack before finishing this.")}
	}

	ticks := (recipe.TimeCost + world.MinutesPerTick - 1) / world.MinutesPerTick
	if ticks < 1 {
		ticks = 1
	}
	energy := float64(ticks * 2)
	if energy < 5 {
		energy = 5
	}

	s.Player.Project = nil
	s.Player.Inventory.Add(output, 1)

	events := []DomainEvent{{
		Type:       EventBlueprintCompleted,
		OccurredAt: now,
		Payload:    map[string]any{"recipe": string(project.Recipe), "output": string(output)},
	}}
	if award, ok := CompletionXP[project.Recipe]; ok {
		events = append(events, grantXP(s, award.Skill, award.Points, now)...)
	}

	text := fmt.Sprintf("You finish the %s. It is crude, but it will serve.", DisplayName(output))
	return ResolveResult{Outcome: Timed(text, ticks, energy), Events: events}
}

func cookFish(s *WorldState, dice world.Dice, now time.Time) ResolveResult {
	if !s.Player.Location.InRoom(RoomCabinMain) {
		return ResolveResult{Outcome: Failure("You need the fireplace to cook. It is in the cabin's main room.")}
	}
	if !s.Fireplace.Lit() {
		return ResolveResult{Outcome: Failure("The fire is out. Cooking needs flames.")}
	}
	if !s.Player.Inventory.Has(ItemRawFish, 1) {
		return ResolveResult{Outcome: Failure("You have no raw fish to cook.")}
	}
	s.Player.Inventory.Remove(ItemRawFish, 1)
	s.Player.Inventory.Add(ItemCookedFish, 1)
	events := grantXP(s, "cooking", 2, now)
	events = append(events, trickleXP(s, "survival", dice, now)...)
	return ResolveResult{
		Outcome: Timed("The fish sizzles over the flames until the skin crisps.", 2, 4),
		Events:  events,
	}
}
