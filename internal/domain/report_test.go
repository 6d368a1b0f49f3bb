package domain

import "testing"

func TestLevelForPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		percent float64
		want    ComprehensionLevel
	}{
		{50, LevelTooDifficult},
		{81.9, LevelTooDifficult},
		{82, LevelVeryChallenging},
		{86.9, LevelVeryChallenging},
		{87, LevelChallenging},
		{89, LevelOptimal},
		{91.5, LevelOptimal},
		{92, LevelComfortable},
		{95, LevelTooEasy},
		{100, LevelTooEasy},
	}

	for _, tc := range cases {
		if got := LevelForPercent(tc.percent); got != tc.want {
			t.Errorf("LevelForPercent(%v) = %s, want %s", tc.percent, got, tc.want)
		}
	}
}

func TestWordListKind_IsValid(t *testing.T) {
	t.Parallel()

	if !WordListKindKnown.IsValid() || !WordListKindExcluded.IsValid() {
		t.Error("expected known and excluded to be valid kinds")
	}
	if WordListKind("proper_nouns").IsValid() {
		t.Error("expected unrecognized kind to be invalid")
	}
}
