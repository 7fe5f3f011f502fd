package survival

import "sort"

// RecipeID names an assembly blueprint.
type RecipeID string

const (
	RecipeStoneKnife RecipeID = "stone_knife"
	RecipeStoneAxe   RecipeID = "stone_axe"
	RecipeCampfire   RecipeID = "campfire"
	RecipeCordage    RecipeID = "cordage"
	RecipeFishingRod RecipeID = "fishing_rod"
)

// Recipe lists what an assembly swallows and what it produces.
// TimeCost is minutes of focused work to finish once everything is in
// place.
type Recipe struct {
	Output   ItemID
	Required map[ItemID]int
	TimeCost int
}

var recipeDefs = map[RecipeID]Recipe{
	RecipeStoneKnife: {
		Output:   ItemStoneKnife,
		Required: map[ItemID]int{ItemSharpStone: 1, ItemStick: 1, ItemPlantFiber: 1},
		TimeCost: 30,
	},
	RecipeStoneAxe: {
		Output:   ItemStoneAxe,
		Required: map[ItemID]int{ItemSharpStone: 1, ItemStick: 1, ItemCordage: 1},
		TimeCost: 40,
	},
	RecipeCampfire: {
		Output:   ItemCampfireKit,
		Required: map[ItemID]int{ItemStone: 4, ItemKindling: 1, ItemLog: 2},
		TimeCost: 20,
	},
	RecipeCordage: {
		Output:   ItemCordage,
		Required: map[ItemID]int{ItemPlantFiber: 3},
		TimeCost: 10,
	},
	RecipeFishingRod: {
		Output:   ItemFishingRod,
		Required: map[ItemID]int{ItemBamboo: 1, ItemStick: 1, ItemCordage: 1},
		TimeCost: 35,
	},
}

// RecipeFor looks an assembly up by id.
func RecipeFor(id RecipeID) (Recipe, bool) {
	r, ok := recipeDefs[id]
	return r, ok
}

// RecipeIDs lists every blueprint in stable order.
func RecipeIDs() []RecipeID {
	ids := make([]RecipeID, 0, len(recipeDefs))
	for id := range recipeDefs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// KnownRecipes lists the blueprints the player's skills have unlocked.
func KnownRecipes(skills SkillSet) []RecipeID {
	known := make([]RecipeID, 0, len(recipeDefs))
	for _, id := range RecipeIDs() {
		if recipeUnlocked(id, skills) {
			known = append(known, id)
		}
	}
	return known
}

func recipeUnlocked(id RecipeID, skills SkillSet) bool {
	switch id {
	case RecipeStoneKnife:
		return skills.Level("survival") >= 8
	case RecipeCordage:
		return skills.Level("tailoring") >= 8
	case RecipeCampfire:
		return skills.Level("fire_making") >= 8 || skills.Level("survival") >= 8
	case RecipeStoneAxe:
		return skills.Level("woodcutting") >= 12
	case RecipeFishingRod:
		return skills.Level("tailoring") >= 10
	}
	return false
}

// Blueprint is one assembly in progress. Materials accumulate until
// every requirement is met; extra offers of a satisfied material are
// rejected rather than hoarded.
type Blueprint struct {
	Recipe  RecipeID       `json:"recipe"`
	Current map[ItemID]int `json:"current,omitempty"`
}

// StartBlueprint opens a fresh assembly for the recipe.
func StartBlueprint(id RecipeID) (*Blueprint, bool) {
	if _, ok := recipeDefs[id]; !ok {
		return nil, false
	}
	return &Blueprint{Recipe: id, Current: map[ItemID]int{}}, true
}

// AddMaterial offers n of an item and returns how many the assembly
// accepted.
func (b *Blueprint) AddMaterial(item ItemID, n int) int {
	if b == nil || n <= 0 {
		return 0
	}
	recipe, ok := recipeDefs[b.Recipe]
	if !ok {
		return 0
	}
	need, wanted := recipe.Required[item]
	if !wanted {
		return 0
	}
	if b.Current == nil {
		b.Current = map[ItemID]int{}
	}
	room := need - b.Current[item]
	if room <= 0 {
		return 0
	}
	if n > room {
		n = room
	}
	b.Current[item] += n
	return n
}

// Complete reports whether every requirement is met.
func (b *Blueprint) Complete() bool {
	if b == nil {
		return false
	}
	recipe, ok := recipeDefs[b.Recipe]
	if !ok {
		return false
	}
	for item, need := range recipe.Required {
		if b.Current[item] < need {
			return false
		}
	}
	return true
}

// Missing lists outstanding materials in stable order.
func (b *Blueprint) Missing() []ItemStack {
	if b == nil {
		return nil
	}
	recipe, ok := recipeDefs[b.Recipe]
	if !ok {
		return nil
	}
	items := make([]ItemID, 0, len(recipe.Required))
	for item := range recipe.Required {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })

	var missing []ItemStack
	for _, item := range items {
		if short := recipe.Required[item] - b.Current[item]; short > 0 {
			missing = append(missing, ItemStack{Item: item, Count: short})
		}
	}
	return missing
}
