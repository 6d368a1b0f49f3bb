package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSegmenter is a deterministic FallbackSegmenter for tests: it splits
// character by character (or via Fn) and records every call, so DP
// correctness is decoupled from any real segmenter's behavior.
type stubSegmenter struct {
	Fn    func(text string) []string
	Calls []string
}

func (s *stubSegmenter) Segment(text string) []string {
	s.Calls = append(s.Calls, text)
	if s.Fn != nil {
		return s.Fn(text)
	}
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

func TestSegmenter_EmptyInput(t *testing.T) {
	t.Parallel()

	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("", NewVocabulary([]string{"你"}))
	assert.Empty(t, got)
	assert.Empty(t, stub.Calls, "fallback must not be called for empty input")
}

func TestSegmenter_LongestKnownWordWins(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"国", "中国", "中国人"})
	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("中国人民", vocab)

	require.NotEmpty(t, got)
	assert.Equal(t, "中国人", got[0], "length-3 known span must beat shorter combinations")
	assert.Equal(t, "中国人民", strings.Join(got, ""))
}

func TestSegmenter_EntirelyUnknownText(t *testing.T) {
	t.Parallel()

	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("魑魅魍魉", NewVocabulary([]string{"你"}))

	assert.Equal(t, []string{"魑", "魅", "魍", "魉"}, got)
	assert.Equal(t, []string{"魑魅魍魉"}, stub.Calls,
		"a fully unknown text must produce a single fallback call over the whole text")
}

func TestSegmenter_ResolvesOpenRunBeforeKnownWord(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"我", "你"})
	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("我猫你", vocab)

	assert.Equal(t, []string{"我", "猫", "你"}, got)
	assert.Equal(t, []string{"猫"}, stub.Calls)
}

func TestSegmenter_TrailingUnknownRun(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"你"})
	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("你好吗", vocab)

	assert.Equal(t, []string{"你", "好", "吗"}, got)
	assert.Equal(t, []string{"好吗"}, stub.Calls)
}

func TestSegmenter_FullCoverage(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"中国", "人民", "我", "爱", "北京", "天安门"})
	texts := []string{
		"我爱北京天安门",
		"中国人民站起来了",
		"随便写一段话测试覆盖",
		"我",
		"爱中国",
	}

	for _, text := range texts {
		seg := NewSegmenter(&stubSegmenter{}, DefaultMaxWordLength)
		got := seg.Segment(text, vocab)
		assert.Equal(t, text, strings.Join(got, ""),
			"concatenated tokens must reproduce the input exactly")
	}
}

func TestSegmenter_MultiTokenFallbackOutput(t *testing.T) {
	t.Parallel()

	vocab := NewVocabulary([]string{"我"})
	stub := &stubSegmenter{
		Fn: func(text string) []string {
			// Pretend the fallback groups everything into one token.
			return []string{text}
		},
	}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("我不知道", vocab)

	assert.Equal(t, []string{"我", "不知道"}, got)
}

func TestSegmenter_MaxWordLengthBoundsSpans(t *testing.T) {
	t.Parallel()

	// A five-character known entry is unreachable with L=4; its characters
	// are still members via expansion.
	vocab := NewVocabulary([]string{"中华人民共和国"})
	stub := &stubSegmenter{}
	seg := NewSegmenter(stub, DefaultMaxWordLength)

	got := seg.Segment("中华人民共和国", vocab)

	assert.Equal(t, "中华人民共和国", strings.Join(got, ""))
	for _, tok := range got {
		assert.LessOrEqual(t, len([]rune(tok)), DefaultMaxWordLength)
	}
	assert.Empty(t, stub.Calls, "every character is a known span, no fallback needed")
}
