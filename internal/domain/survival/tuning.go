package survival

const (
	// MaxCarryWeight is the pack limit. Adding a stack that would push
	// the total past it fails outright.
	MaxCarryWeight = 50.0

	// Fire thresholds. A lit fire smolders below the burning threshold,
	// burns below the roaring threshold and roars at or above it. Cold
	// fireplaces stay cold no matter how much fuel is stacked.
	FireIgniteMinFuel    = 5
	FireBurningThreshold = 10
	FireRoaringThreshold = 40

	// Ignition rolls.
	LightFireSkillBase   = 50
	LightFireMatchBonus  = 5
	LightFireMaxChance   = 0.95
	LightFireFailFuelTax = 2

	// Skill ledger. Unseen skills sit at the seed level; the experience
	// needed for the next level grows linearly.
	SkillSeedLevel  = 10
	SkillLevelCap   = 100
	XPCurveBase     = 10
	XPCurvePerLevel = 5

	// XPTrickleChance is the flat roll for one bonus point on a
	// successful skilled action.
	XPTrickleChance = 0.30

	// Skill checks read (base + level/2) / 100.
	ChopSkillBase = 50

	// Warmth eases one tenth of the way toward the comfort target per
	// tick; sustained comfort or discomfort drifts mood.
	WarmthEaseRate      = 0.10
	ComfortTargetOffset = 20
	MoodDriftStep       = 0.5
	ComfortBandLow      = 40.0
	ComfortBandHigh     = 60.0
	DiscomfortLow       = 30.0
	DiscomfortHigh      = 70.0

	// Indoor temperatures. The fireplace only warms its own room.
	IndoorFireBaseTemp = 18
	IndoorBaseTemp     = 16

	// Severe weather tax on outdoor timed work.
	SevereWeatherExtraTicks  = 1
	SevereWeatherExtraEnergy = 2.0

	// Sleep.
	SleepTicks          = 6
	SleepEnergyGain     = 25
	SleepMoodGain       = 6
	SleepFullnessCost   = 5
	SleepHydrationCost  = 5
	SleepHealthGainFed  = 15
	SleepHealthGainPoor = 5
	SleepFedFullness    = 60
	SleepFedHydration   = 50

	// Waiting.
	WaitMaxTicks = 10

	// Starting vitals.
	StartHealth    = 100.0
	StartWarmth    = 50.0
	StartEnergy    = 100.0
	StartMood      = 70.0
	StartFullness  = 80.0
	StartHydration = 80.0

	// The shed opens with a few logs and the axe on the floor.
	StartShedLogs = 6
)

// CompletionXP is what finishing an assembly teaches.
var CompletionXP = map[RecipeID]struct {
	Skill  string
	Points int
}{
	RecipeStoneKnife: {Skill: "stonemasonry", Points: 10},
	RecipeStoneAxe:   {Skill: "stonemasonry", Points: 10},
	RecipeCampfire:   {Skill: "survival", Points: 5},
	RecipeCordage:    {Skill: "tailoring", Points: 5},
	RecipeFishingRod: {Skill: "tailoring", Points: 5},
}
