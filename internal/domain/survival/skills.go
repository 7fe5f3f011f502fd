package survival

import "sort"

// SkillProgress tracks one learned skill.
type SkillProgress struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
}

// SkillSet maps skill names to progress. A skill absent from the map
// sits at the seed level with no banked experience.
type SkillSet map[string]SkillProgress

// KnownSkills is the closed catalog. Improvements to names outside it
// are silently ignored.
var KnownSkills = []string{
	"cooking",
	"fire_making",
	"foraging",
	"observation",
	"stonemasonry",
	"survival",
	"tailoring",
	"woodcutting",
}

// NewSkillSet seeds every known skill at the starting level.
func NewSkillSet() SkillSet {
	s := make(SkillSet, len(KnownSkills))
	for _, name := range KnownSkills {
		s[name] = SkillProgress{Level: SkillSeedLevel}
	}
	return s
}

func knownSkill(name string) bool {
	for _, k := range KnownSkills {
		if k == name {
			return true
		}
	}
	return false
}

// XPToNext is the experience needed to clear the given level.
func XPToNext(level int) int {
	return XPCurveBase + level*XPCurvePerLevel
}

// Get returns the progress for a skill, defaulting unseen skills to the
// seed level.
func (s SkillSet) Get(name string) SkillProgress {
	if p, ok := s[name]; ok {
		return p
	}
	return SkillProgress{Level: SkillSeedLevel}
}

// Level is a shorthand for the current level of a skill.
func (s SkillSet) Level(name string) int {
	return s.Get(name).Level
}

// Improve banks experience and carries it across as many level-ups as
// it funds. Levels stop at the cap and surplus experience at the cap is
// discarded. The return value is how many levels were gained.
func (s SkillSet) Improve(name string, points int) int {
	if s == nil || points <= 0 || !knownSkill(name) {
		return 0
	}
	p := s.Get(name)
	if p.Level >= SkillLevelCap {
		return 0
	}
	p.XP += points
	gained := 0
	for p.Level < SkillLevelCap && p.XP >= XPToNext(p.Level) {
		p.XP -= XPToNext(p.Level)
		p.Level++
		gained++
	}
	if p.Level >= SkillLevelCap {
		p.Level = SkillLevelCap
		p.XP = 0
	}
	s[name] = p
	return gained
}

// Names lists the tracked skills in stable order.
func (s SkillSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
