package analyzer

// FallbackSegmenter segments text the vocabulary cannot explain. It must
// cover its entire input with no gaps and be deterministic, so reports
// are reproducible. It has no knowledge of the vocabulary.
type FallbackSegmenter interface {
	Segment(text string) []string
}

// DefaultMaxWordLength bounds the longest known-word span the segmenter
// considers, in characters. Known entries longer than this are never
// matched as spans (they still count for scoring via Covers).
const DefaultMaxWordLength = 4

// Segmenter splits text into tokens, preferring spans that are members of
// the known vocabulary and delegating unexplained runs to the fallback.
type Segmenter struct {
	fallback      FallbackSegmenter
	maxWordLength int
}

// NewSegmenter creates a Segmenter. A maxWordLength below 1 falls back to
// DefaultMaxWordLength.
func NewSegmenter(fallback FallbackSegmenter, maxWordLength int) *Segmenter {
	if maxWordLength < 1 {
		maxWordLength = DefaultMaxWordLength
	}
	return &Segmenter{fallback: fallback, maxWordLength: maxWordLength}
}

// segChain is a persistent token list shared across DP states through
// parent pointers. Appending allocates one node and never mutates shared
// tails, so extending a state is O(1) instead of copying the whole list.
type segChain struct {
	token  string
	parent *segChain
}

func (c *segChain) append(token string) *segChain {
	return &segChain{token: token, parent: c}
}

func (c *segChain) appendAll(tokens []string) *segChain {
	for _, t := range tokens {
		c = c.append(t)
	}
	return c
}

// tokens materializes the chain in left-to-right order.
func (c *segChain) tokens() []string {
	n := 0
	for node := c; node != nil; node = node.parent {
		n++
	}
	out := make([]string, n)
	for node := c; node != nil; node = node.parent {
		n--
		out[n] = node.token
	}
	return out
}

// dpState is one entry of the DP table: the best segmentation ending at a
// rune position. score is the total rune length covered by known-word
// spans (-1 while no known word ends here), chain holds the tokens of
// that segmentation excluding any still-open unexplained run, and
// runStart is the start of the open run (-1 when none).
type dpState struct {
	score    int
	chain    *segChain
	runStart int
}

// Segment tokenizes text against the vocabulary. The concatenation of the
// returned tokens always equals the input exactly: any stretch no known
// word explains is handed to the fallback segmenter, so no position is
// left uncovered. Among segmentations with equal coverage, the longest
// known word ending at each position wins.
func (s *Segmenter) Segment(text string, vocab *Vocabulary) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	dp := make([]dpState, n+1)
	dp[0] = dpState{score: 0, runStart: -1}

	for i := 1; i <= n; i++ {
		dp[i] = dpState{score: -1, runStart: -1}

		// Longest candidate first: with strictly-greater acceptance this
		// resolves score ties in favor of the longest known word ending at i.
		lo := i - s.maxWordLength
		if lo < 0 {
			lo = 0
		}
		for j := lo; j < i; j++ {
			if dp[j].score < 0 {
				continue
			}
			w := string(runes[j:i])
			if !vocab.Contains(w) {
				continue
			}
			score := dp[j].score + (i - j)
			if score <= dp[i].score {
				continue
			}
			chain := dp[j].chain
			if dp[j].runStart >= 0 {
				chain = chain.appendAll(s.fallback.Segment(string(runes[dp[j].runStart:j])))
			}
			dp[i] = dpState{score: score, chain: chain.append(w), runStart: -1}
		}
		if dp[i].score >= 0 {
			continue
		}

		// No known word ends at i: extend an unexplained run from the best
		// finalized predecessor. Linear scan over finalized entries only;
		// max score wins, ties go to the smallest position.
		best := 0
		for x := 1; x < i; x++ {
			if dp[x].score > dp[best].score {
				best = x
			}
		}
		run := dp[best].runStart
		if run < 0 {
			run = best
		}
		dp[i] = dpState{score: dp[best].score, chain: dp[best].chain, runStart: run}
	}

	final := dp[n]
	chain := final.chain
	if final.runStart >= 0 {
		chain = chain.appendAll(s.fallback.Segment(string(runes[final.runStart:n])))
	}
	return chain.tokens()
}
