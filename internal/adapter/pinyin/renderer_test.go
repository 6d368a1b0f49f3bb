package pinyin

import (
	"strings"
	"testing"
)

func TestRenderer_ToneMarked(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	got := r.Render("中国")
	if len(got) != 2 {
		t.Fatalf("expected 2 syllables, got %v", got)
	}
	if got[0] != "zhōng" || got[1] != "guó" {
		t.Errorf("expected [zhōng guó], got %v", got)
	}
}

func TestRenderer_OneSyllablePerCharacter(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	token := "慢慢的"
	got := r.Render(token)
	if len(got) != len([]rune(token)) {
		t.Errorf("expected %d syllables, got %d (%v)", len([]rune(token)), len(got), got)
	}
}

func TestRenderer_NonHanPassthrough(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	got := r.Render("猫X")
	if len(got) != 2 {
		t.Fatalf("expected 2 syllables, got %v", got)
	}
	if got[1] != "X" {
		t.Errorf("expected non-Han character passed through, got %q", got[1])
	}
	if !strings.Contains(got[0], "āo") {
		t.Errorf("expected tone-marked māo, got %q", got[0])
	}
}
