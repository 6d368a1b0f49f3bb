package wordfile

import (
	"strings"
	"testing"
)

func TestParse_Basic(t *testing.T) {
	t.Parallel()

	input := "我\n爱\n中国\n"
	words, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 3 || words[2] != "中国" {
		t.Errorf("expected [我 爱 中国], got %v", words)
	}
}

func TestParse_SkipsCommentsAndBlanks(t *testing.T) {
	t.Parallel()

	input := "# HSK level 1\n我\n\n   \n# another comment\n你\n"
	words, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("expected 2 words, got %v", words)
	}
}

func TestParse_StripsInlineComment(t *testing.T) {
	t.Parallel()

	words, err := Parse(strings.NewReader("朋友 # friend\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 1 || words[0] != "朋友" {
		t.Errorf("expected [朋友], got %v", words)
	}
}

func TestParse_IgnoresTabSeparatedExtras(t *testing.T) {
	t.Parallel()

	words, err := Parse(strings.NewReader("猫\tmāo\tcat\n狗\tgǒu\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 2 || words[0] != "猫" || words[1] != "狗" {
		t.Errorf("expected [猫 狗], got %v", words)
	}
}

func TestParse_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	words, err := Parse(strings.NewReader("  我  \r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 1 || words[0] != "我" {
		t.Errorf("expected [我], got %v", words)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	words, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("expected no words, got %v", words)
	}
}
