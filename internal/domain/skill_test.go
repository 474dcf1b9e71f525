package domain

import "testing"

func TestProfileFor_KnownLevels(t *testing.T) {
	tests := []struct {
		level         SkillLevel
		caseSensitive bool
		maxTypo       int
		maxHints      int
	}{
		{SkillBeginner, false, 3, 3},
		{SkillIntermediate, false, 2, 2},
		{SkillAdvanced, true, 1, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			p := ProfileFor(tt.level)
			if p.CaseSensitive != tt.caseSensitive {
				t.Errorf("CaseSensitive = %v, want %v", p.CaseSensitive, tt.caseSensitive)
			}
			if p.MaxTypoDistance != tt.maxTypo {
				t.Errorf("MaxTypoDistance = %d, want %d", p.MaxTypoDistance, tt.maxTypo)
			}
			if p.MaxHints != tt.maxHints {
				t.Errorf("MaxHints = %d, want %d", p.MaxHints, tt.maxHints)
			}
		})
	}
}

func TestProfileFor_Monotonicity(t *testing.T) {
	b := ProfileFor(SkillBeginner)
	i := ProfileFor(SkillIntermediate)
	a := ProfileFor(SkillAdvanced)

	if !(b.MaxTypoDistance >= i.MaxTypoDistance && i.MaxTypoDistance >= a.MaxTypoDistance) {
		t.Error("typo tolerance must be non-increasing with skill")
	}
	if !(b.MaxHints >= i.MaxHints && i.MaxHints >= a.MaxHints) {
		t.Error("hint budget must be non-increasing with skill")
	}
	if b.CaseSensitive || i.CaseSensitive || !a.CaseSensitive {
		t.Error("only advanced comparisons are case-sensitive")
	}
}

func TestProfileFor_UnknownFallsBackToBeginner(t *testing.T) {
	p := ProfileFor(SkillLevel("grandmaster"))
	if p.Level != SkillBeginner {
		t.Errorf("unknown level should fall back to beginner, got %v", p.Level)
	}
}
