// Package wordfile parses plain-text word list files: one word per line,
// optional tab-separated extras (pinyin, gloss) that are ignored, and
// `#` comments. Pure function: reader in, words out. No database
// dependencies.
package wordfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads words from r. Blank lines and lines starting with `#` are
// skipped; inline `#` comments and everything after the first tab are
// stripped. Duplicates are preserved (callers dedupe).
func Parse(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := cleanLine(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}

// ParseFile parses the word list file at path.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	words, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

func cleanLine(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if i := strings.IndexByte(line, '\t'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
