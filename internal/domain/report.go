package domain

// UnknownWord is one distinct token the reader is assumed not to know,
// with its occurrence count and a tone-marked pinyin annotation
// (one syllable per character, space-joined).
type UnknownWord struct {
	Token  string `json:"token"`
	Pinyin string `json:"pinyin,omitempty"`
	Count  int    `json:"count"`
}

// AnalysisReport is the result of analyzing one text against a vocabulary.
// UnknownWords is sorted by count descending; ties keep the order of first
// occurrence in the filtered token sequence.
type AnalysisReport struct {
	TotalTokens          int                `json:"total_tokens"`
	DistinctTokens       int                `json:"distinct_tokens"`
	KnownTokens          int                `json:"known_tokens"`
	ComprehensionPercent float64            `json:"comprehension_percent"`
	Level                ComprehensionLevel `json:"level"`
	UnknownWords         []UnknownWord      `json:"unknown_words"`
}

// ComprehensionLevel is a coarse difficulty band derived from the
// comprehension percentage, following the i+1 reading guidance bands.
type ComprehensionLevel string

const (
	LevelTooDifficult    ComprehensionLevel = "too_difficult"    // < 82%
	LevelVeryChallenging ComprehensionLevel = "very_challenging" // 82–87%
	LevelChallenging     ComprehensionLevel = "challenging"      // 87–89%
	LevelOptimal         ComprehensionLevel = "optimal"          // 89–92%
	LevelComfortable     ComprehensionLevel = "comfortable"      // 92–95%
	LevelTooEasy         ComprehensionLevel = "too_easy"         // >= 95%
)

// LevelForPercent maps a comprehension percentage to its difficulty band.
func LevelForPercent(p float64) ComprehensionLevel {
	switch {
	case p < 82:
		return LevelTooDifficult
	case p < 87:
		return LevelVeryChallenging
	case p < 89:
		return LevelChallenging
	case p < 92:
		return LevelOptimal
	case p < 95:
		return LevelComfortable
	default:
		return LevelTooEasy
	}
}
