package survival

import (
	"time"

	"emberside/internal/domain/world"
)

// OutcomeKind classifies how an action settled.
type OutcomeKind string

const (
	OutcomeSuccess        OutcomeKind = "success"
	OutcomeFailure        OutcomeKind = "failure"
	OutcomePartialSuccess OutcomeKind = "partial_success"
	OutcomeTimed          OutcomeKind = "timed"
)

// Outcome is the player-facing result of one action. Malformed and
// impossible actions come back as failures, never as errors. Timed
// outcomes carry the in-world ticks and energy the action consumes; the
// caller advances the simulation by TickCost and then charges the
// energy.
type Outcome struct {
	Kind       OutcomeKind `json:"kind"`
	Text       string      `json:"text"`
	TickCost   int         `json:"tick_cost,omitempty"`
	EnergyCost float64     `json:"energy_cost,omitempty"`
}

func Success(text string) Outcome { return Outcome{Kind: OutcomeSuccess, Text: text} }

func Failure(text string) Outcome { return Outcome{Kind: OutcomeFailure, Text: text} }

func Partial(text string) Outcome { return Outcome{Kind: OutcomePartialSuccess, Text: text} }

func Timed(text string, ticks int, energy float64) Outcome {
	return Outcome{Kind: OutcomeTimed, Text: text, TickCost: ticks, EnergyCost: energy}
}

// LocationKind says whether the player stands under the sky or inside.
type LocationKind string

const (
	LocationOutdoors LocationKind = "outdoors"
	LocationIndoors  LocationKind = "indoors"
)

// RoomID names an interior space. The cabin's main room holds the
// fireplace and the shelf; the shed holds the log stock and the
// chopping block.
type RoomID string

const (
	RoomCabinMain    RoomID = "cabin_main"
	RoomCabinTerrace RoomID = "cabin_terrace"
	RoomWoodShed     RoomID = "wood_shed"
)

// Location is where the player stands. Outdoors the position is the
// exact map cell; indoors it anchors the building so stepping outside
// lands somewhere sensible. The kind is the single source of truth, so
// the player can never be both in a room and under the sky.
type Location struct {
	Kind     LocationKind   `json:"kind"`
	Position world.Position `json:"position"`
	Room     RoomID         `json:"room,omitempty"`
}

func OutdoorsAt(p world.Position) Location {
	return Location{Kind: LocationOutdoors, Position: p}
}

func InsideRoom(room RoomID, anchor world.Position) Location {
	return Location{Kind: LocationIndoors, Position: anchor, Room: room}
}

func (l Location) Outdoors() bool { return l.Kind == LocationOutdoors }

func (l Location) InRoom(room RoomID) bool {
	return l.Kind == LocationIndoors && l.Room == room
}

// ActionKind names the verbs the resolver understands.
type ActionKind string

const (
	ActionChopWood      ActionKind = "chop_wood"
	ActionSplitFirewood ActionKind = "split_firewood"
	ActionKnapStone     ActionKind = "knap_stone"
	ActionLightFire     ActionKind = "light_fire"
	ActionAddFuel       ActionKind = "add_fuel"
	ActionForage        ActionKind = "forage"
	ActionCraft         ActionKind = "craft"
	ActionEat           ActionKind = "eat"
	ActionDrink         ActionKind = "drink"
	ActionSleep         ActionKind = "sleep"
	ActionWait          ActionKind = "wait"
	ActionMove          ActionKind = "move"
	ActionEnter         ActionKind = "enter"
	ActionExit          ActionKind = "exit"
	ActionTake          ActionKind = "take"
	ActionPut           ActionKind = "put"
)

// ActionIntent is one requested action with its arguments. Fields the
// action does not use are ignored.
type ActionIntent struct {
	Kind      ActionKind `json:"kind"`
	Item      string     `json:"item,omitempty"`
	Recipe    string     `json:"recipe,omitempty"`
	Direction string     `json:"direction,omitempty"`
	Target    string     `json:"target,omitempty"`
	Count     int        `json:"count,omitempty"`
	Ticks     int        `json:"ticks,omitempty"`
}

// DomainEvent is an append-only record of something that happened in
// the world.
type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventActionSettled      = "action_settled"
	EventFireDied           = "fire_died"
	EventLevelUp            = "level_up"
	EventBlueprintCompleted = "blueprint_completed"
	EventPlayerDied         = "player_died"
)

// DeathCause records what finally did the player in.
type DeathCause string

const (
	DeathCauseUnknown DeathCause = "unknown"
	DeathCauseInjury  DeathCause = "injury"
)

// Player is everything that travels with the survivor.
type Player struct {
	Location   Location        `json:"location"`
	Facing     world.Direction `json:"facing"`
	Vitals     Vitals          `json:"vitals"`
	Inventory  Inventory       `json:"inventory"`
	Skills     SkillSet        `json:"skills"`
	Project    *Blueprint      `json:"project,omitempty"`
	Dead       bool            `json:"dead,omitempty"`
	DeathCause DeathCause      `json:"death_cause,omitempty"`
}

// ShedState is the wood shed's working stock. Logs and split firewood
// stack by the wall; the axe leans wherever it was left.
type ShedState struct {
	Logs       int  `json:"logs"`
	Firewood   int  `json:"firewood"`
	AxeOnFloor bool `json:"axe_on_floor"`
}

// WorldState is the single aggregate the simulation owns. Everything
// the tick loop and the resolver touch lives here and saves as one row,
// guarded by an optimistic version.
type WorldState struct {
	ID          string             `json:"id"`
	Seed        uint64             `json:"seed"`
	Clock       world.Clock        `json:"clock"`
	Weather     world.Weather      `json:"weather"`
	Terrain     world.Terrain      `json:"terrain"`
	Player      Player             `json:"player"`
	Fireplace   Fireplace          `json:"fireplace"`
	CabinShelf  Inventory          `json:"cabin_shelf"`
	Shed        ShedState          `json:"shed"`
	Trees       []world.Tree       `json:"trees"`
	ForageNodes []world.ForageNode `json:"forage_nodes,omitempty"`
	Wildlife    []Animal           `json:"wildlife"`
	Version     int64              `json:"version"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
