package domain

// SkillLevel represents a learner's self-reported or inferred proficiency
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Valid reports whether the level is one of the known values
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced:
		return true
	}
	return false
}

// SkillProfile is the matching strictness and hint budget derived from a
// skill level. Higher skill means strictness never decreases and the hint
// budget never increases.
type SkillProfile struct {
	Level           SkillLevel
	CaseSensitive   bool // exact comparisons honor case
	MaxTypoDistance int  // edit-distance tolerance for near-miss hints
	MaxHints        int  // hint reveal budget per exercise
}

var skillProfiles = map[SkillLevel]SkillProfile{
	SkillBeginner:     {Level: SkillBeginner, CaseSensitive: false, MaxTypoDistance: 3, MaxHints: 3},
	SkillIntermediate: {Level: SkillIntermediate, CaseSensitive: false, MaxTypoDistance: 2, MaxHints: 2},
	SkillAdvanced:     {Level: SkillAdvanced, CaseSensitive: true, MaxTypoDistance: 1, MaxHints: 1},
}

// ProfileFor returns the strictness profile for a skill level.
// Unknown levels fall back to the beginner profile, the most forgiving one.
func ProfileFor(level SkillLevel) SkillProfile {
	if p, ok := skillProfiles[level]; ok {
		return p
	}
	return skillProfiles[SkillBeginner]
}
