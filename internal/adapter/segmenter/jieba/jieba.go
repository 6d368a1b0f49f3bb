// Package jieba adapts the gojieba statistical segmenter as the
// analyzer's fallback for text the known vocabulary cannot explain.
package jieba

import (
	"github.com/yanyiwu/gojieba"

	"github.com/heartmarshall/hanscope/internal/config"
)

// Segmenter wraps a gojieba handle. The handle is backed by cgo and must
// be released with Close when the process shuts down.
type Segmenter struct {
	handle *gojieba.Jieba
}

// New creates a Segmenter. With all paths empty, the dictionaries bundled
// with gojieba are used.
func New(cfg config.SegmenterConfig) *Segmenter {
	if cfg.DictPath == "" {
		return &Segmenter{handle: gojieba.NewJieba()}
	}
	return &Segmenter{handle: gojieba.NewJieba(
		cfg.DictPath,
		cfg.HMMPath,
		cfg.UserDictPath,
		cfg.IDFPath,
		cfg.StopWordsPath,
	)}
}

// Segment cuts text into tokens covering the whole input, HMM enabled for
// out-of-dictionary sequences. gojieba is deterministic for a fixed
// dictionary, so reports are reproducible.
func (s *Segmenter) Segment(text string) []string {
	return s.handle.Cut(text, true)
}

// Close releases the underlying cgo resources.
func (s *Segmenter) Close() {
	s.handle.Free()
}
