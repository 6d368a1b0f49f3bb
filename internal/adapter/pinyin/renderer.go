// Package pinyin renders tokens as tone-marked pinyin syllables.
package pinyin

import (
	gopinyin "github.com/mozillazg/go-pinyin"
)

// Renderer produces one romanized syllable per character, tone-marked
// (e.g. 猫 -> māo). Characters without a pinyin reading (rare symbols,
// stray non-Han characters that survived filtering) are passed through
// verbatim so the annotation stays aligned with the token.
type Renderer struct {
	args gopinyin.Args
}

// NewRenderer creates a Renderer with tone-marked output.
func NewRenderer() *Renderer {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone
	args.Fallback = func(r rune, _ gopinyin.Args) []string {
		return []string{string(r)}
	}
	return &Renderer{args: args}
}

// Render returns the syllables for token, one per character. Polyphonic
// characters use their most common reading.
func (r *Renderer) Render(token string) []string {
	per := gopinyin.Pinyin(token, r.args)
	out := make([]string, 0, len(per))
	for _, readings := range per {
		if len(readings) > 0 {
			out = append(out, readings[0])
		}
	}
	return out
}
