package survival

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ItemID names a catalog entry. Item ids double as the wire and save
// representation.
type ItemID string

const (
	ItemLog         ItemID = "log"
	ItemFirewood    ItemID = "firewood"
	ItemKindling    ItemID = "kindling"
	ItemStick       ItemID = "stick"
	ItemBark        ItemID = "bark"
	ItemDryLeaves   ItemID = "dry_leaves"
	ItemPinecone    ItemID = "pinecone"
	ItemBamboo      ItemID = "bamboo"
	ItemCharcoal    ItemID = "charcoal"
	ItemPaper       ItemID = "paper"
	ItemStone       ItemID = "stone"
	ItemSharpStone  ItemID = "sharp_stone"
	ItemPlantFiber  ItemID = "plant_fiber"
	ItemCordage     ItemID = "cordage"
	ItemAxe         ItemID = "axe"
	ItemStoneAxe    ItemID = "stone_axe"
	ItemStoneKnife  ItemID = "stone_knife"
	ItemFishingRod  ItemID = "fishing_rod"
	ItemCampfireKit ItemID = "campfire_kit"
	ItemMatchbox    ItemID = "matchbox"
	ItemKettle      ItemID = "kettle"
	ItemTeaCup      ItemID = "tea_cup"
	ItemWoolBlanket ItemID = "wool_blanket"
	ItemWildHerbs   ItemID = "wild_herbs"
	ItemApple       ItemID = "apple"
	ItemWildBerry   ItemID = "wild_berry"
	ItemDate        ItemID = "date"
	ItemRawFish     ItemID = "raw_fish"
	ItemCookedFish  ItemID = "cooked_fish"
)

// ItemDef fixes an item's display name, pack weight, fuel worth and
// whether it can serve as tinder. A fuel value of zero means the item
// will not burn.
type ItemDef struct {
	Name      string
	Weight    float64
	FuelValue int
	Tinder    bool
	Aliases   []string
}

const defaultItemWeight = 0.1

var itemDefs = map[ItemID]ItemDef{
	ItemLog:         {Name: "log", Weight: 5.0, FuelValue: 60, Aliases: []string{"unsplit log", "wood"}},
	ItemFirewood:    {Name: "firewood", FuelValue: 30, Aliases: []string{"split log"}},
	ItemKindling:    {Name: "kindling", FuelValue: 10, Tinder: true},
	ItemStick:       {Name: "stick", FuelValue: 5, Aliases: []string{"branch"}},
	ItemBark:        {Name: "bark", FuelValue: 6, Tinder: true},
	ItemDryLeaves:   {Name: "dry leaves", FuelValue: 3, Tinder: true, Aliases: []string{"leaves"}},
	ItemPinecone:    {Name: "pinecone", FuelValue: 5, Tinder: true},
	ItemBamboo:      {Name: "bamboo", Weight: 1.0, FuelValue: 8},
	ItemCharcoal:    {Name: "charcoal", FuelValue: 40},
	ItemPaper:       {Name: "paper", Weight: 0.05, FuelValue: 1, Tinder: true},
	ItemStone:       {Name: "stone", Weight: 0.5, Aliases: []string{"rock", "pebble"}},
	ItemSharpStone:  {Name: "sharp stone", Weight: 0.5, Aliases: []string{"flake"}},
	ItemPlantFiber:  {Name: "plant fiber", Tinder: true, Aliases: []string{"fiber", "fibre"}},
	ItemCordage:     {Name: "cordage", Aliases: []string{"rope", "cord"}},
	ItemAxe:         {Name: "axe", Weight: 3.0, Aliases: []string{"hatchet"}},
	ItemStoneAxe:    {Name: "stone axe", Weight: 3.0},
	ItemStoneKnife:  {Name: "stone knife", Weight: 0.5, Aliases: []string{"knife"}},
	ItemFishingRod:  {Name: "fishing rod", Weight: 1.0, Aliases: []string{"rod", "pole"}},
	ItemCampfireKit: {Name: "campfire kit", Weight: 2.0, Aliases: []string{"campfire"}},
	ItemMatchbox:    {Name: "matchbox", Aliases: []string{"matches", "match"}},
	ItemKettle:      {Name: "kettle", Weight: 1.0},
	ItemTeaCup:      {Name: "tea cup", Aliases: []string{"cup"}},
	ItemWoolBlanket: {Name: "wool blanket", Weight: 0.5, Aliases: []string{"blanket"}},
	ItemWildHerbs:   {Name: "wild herbs", Aliases: []string{"herbs"}},
	ItemApple:       {Name: "apple"},
	ItemWildBerry:   {Name: "wild berries", Aliases: []string{"berries", "berry"}},
	ItemDate:        {Name: "date", Aliases: []string{"dates"}},
	ItemRawFish:     {Name: "raw fish", Aliases: []string{"fish"}},
	ItemCookedFish:  {Name: "cooked fish"},
}

// Def returns the catalog entry for an item. Unknown items come back as
// featherweight curiosities so lookups never panic.
func Def(item ItemID) ItemDef {
	if def, ok := itemDefs[item]; ok {
		if def.Weight == 0 {
			def.Weight = defaultItemWeight
		}
		return def
	}
	return ItemDef{Name: string(item), Weight: defaultItemWeight}
}

// DisplayName is the item's human name.
func DisplayName(item ItemID) string {
	return Def(item).Name
}

// StackLabel renders an item with its count, "stone axe" or "stick x3".
func StackLabel(item ItemID, count int) string {
	if count == 1 {
		return DisplayName(item)
	}
	return fmt.Sprintf("%s x%d", DisplayName(item), count)
}

// IsTool reports whether the item helps with cutting work.
func IsTool(item ItemID) bool {
	switch item {
	case ItemAxe, ItemStoneAxe, ItemStoneKnife:
		return true
	}
	return false
}

// IsAxe reports whether the item can fell a tree or split a log.
func IsAxe(item ItemID) bool {
	return item == ItemAxe || item == ItemStoneAxe
}

// maxNameDistance bounds how sloppy input may be before resolution
// gives up and suggests instead.
const maxNameDistance = 2

// ResolveItemName maps free-form input to a catalog item. Exact ids,
// display names and aliases match first; close misspellings resolve to
// the nearest entry within a small edit distance.
func ResolveItemName(input string) (ItemID, bool) {
	needle := normalizeName(input)
	if needle == "" {
		return "", false
	}
	if _, ok := itemDefs[ItemID(needle)]; ok {
		return ItemID(needle), true
	}
	for id, def := range itemDefs {
		if normalizeName(def.Name) == needle {
			return id, true
		}
		for _, alias := range def.Aliases {
			if normalizeName(alias) == needle {
				return id, true
			}
		}
	}

	bestID := ItemID("")
	bestDist := maxNameDistance + 1
	for _, id := range catalogOrder() {
		def := itemDefs[id]
		for _, cand := range append([]string{string(id), def.Name}, def.Aliases...) {
			d := levenshtein.ComputeDistance(needle, normalizeName(cand))
			if d < bestDist {
				bestDist = d
				bestID = id
			}
		}
	}
	if bestDist <= maxNameDistance {
		return bestID, true
	}
	return "", false
}

// SuggestItemName returns the closest catalog name for failure text, or
// an empty string when nothing is remotely close.
func SuggestItemName(input string) string {
	needle := normalizeName(input)
	if needle == "" {
		return ""
	}
	best := ""
	bestDist := 5
	for _, id := range catalogOrder() {
		def := itemDefs[id]
		d := levenshtein.ComputeDistance(needle, normalizeName(def.Name))
		if d < bestDist {
			bestDist = d
			best = def.Name
		}
	}
	return best
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}

// catalogOrder iterates items in a stable order so fuzzy ties resolve
// the same way every time.
func catalogOrder() []ItemID {
	ids := make([]ItemID, 0, len(itemDefs))
	for id := range itemDefs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ConsumeEffect is what eating or drinking one unit does.
type ConsumeEffect struct {
	Fullness  float64
	Hydration float64
	Mood      float64
	Energy    float64
	Health    float64
	Warmth    float64
	Verb      string
}

var consumeEffects = map[ItemID]ConsumeEffect{
	ItemApple:      {Fullness: 15, Verb: "eat"},
	ItemWildBerry:  {Fullness: 5, Mood: 2, Verb: "eat"},
	ItemDate:       {Fullness: 10, Hydration: 8, Mood: 2, Verb: "eat"},
	ItemRawFish:    {Fullness: 14, Health: -1, Mood: -2, Verb: "choke down"},
	ItemCookedFish: {Fullness: 30, Mood: 4, Verb: "eat"},
}

// EffectOf looks up the consumption effect for an item.
func EffectOf(item ItemID) (ConsumeEffect, bool) {
	eff, ok := consumeEffects[item]
	return eff, ok
}
