package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctuationChars covers ASCII and common CJK punctuation. Tokens made
// entirely of these characters carry no lexical content.
const punctuationChars = `,.:()!@[]+/\！?？｡。＂＃＄％＆＇（）＊＋，－／：；＜＝＞＠［＼］＾＿｀｛｜｝～｟｠｢｣､、〃《》「」『』【】〔〕〖〗〘〙〚〛〜〝〞〟〰〾〿–—‘’‛“”„‟…‧﹏.?;﹔|.-·-*─'"`

var punctuation = func() map[rune]struct{} {
	set := make(map[rune]struct{}, utf8.RuneCountInString(punctuationChars))
	for _, r := range punctuationChars {
		set[r] = struct{}{}
	}
	return set
}()

// FilterTokens drops non-lexical tokens: whitespace-only, pure decimal
// digits, pure punctuation, and anything containing an ASCII letter or
// digit (e.g. "S01E03Part4"). Order-preserving; tokens are never split
// or merged.
func FilterTokens(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !shouldFilter(tok) {
			kept = append(kept, tok)
		}
	}
	return kept
}

func shouldFilter(token string) bool {
	if strings.TrimSpace(token) == "" {
		return true
	}

	allDigits := true
	allPunct := true
	for _, r := range token {
		if r < utf8.RuneSelf && (isASCIILetter(r) || r >= '0' && r <= '9') {
			return true
		}
		if !unicode.IsDigit(r) {
			allDigits = false
		}
		if _, ok := punctuation[r]; !ok {
			allPunct = false
		}
	}
	return allDigits || allPunct
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
