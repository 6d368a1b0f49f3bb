package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	// env-required accepts a set-but-empty DATABASE_DSN, so check here too.
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	if err := c.Analyzer.validate(); err != nil {
		return fmt.Errorf("analyzer: %w", err)
	}
	if c.WordList.MaxWordsPerList < 1 {
		return fmt.Errorf("word_list.max_words_per_list must be > 0 (got %d)", c.WordList.MaxWordsPerList)
	}
	return nil
}

func (a *AnalyzerConfig) validate() error {
	if a.MaxWordLength < 1 {
		return fmt.Errorf("max_word_length must be >= 1 (got %d)", a.MaxWordLength)
	}
	if a.MaxUnknownDisplay < 1 {
		return fmt.Errorf("max_unknown_display must be >= 1 (got %d)", a.MaxUnknownDisplay)
	}
	if a.MaxTextBytes < 0 {
		return fmt.Errorf("max_text_bytes must be >= 0 (got %d)", a.MaxTextBytes)
	}
	if a.BatchMaxDocs < 1 {
		return fmt.Errorf("batch_max_docs must be >= 1 (got %d)", a.BatchMaxDocs)
	}
	return nil
}
