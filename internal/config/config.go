package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	WordList  WordListConfig  `yaml:"word_list"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AnalyzerConfig holds comprehension analysis settings.
type AnalyzerConfig struct {
	// MaxWordLength bounds the longest known-word span the DP segmenter
	// considers, in characters.
	MaxWordLength     int `yaml:"max_word_length"     env:"ANALYZER_MAX_WORD_LENGTH"     env-default:"4"`
	MaxUnknownDisplay int `yaml:"max_unknown_display" env:"ANALYZER_MAX_UNKNOWN_DISPLAY" env-default:"50"`
	// MaxTextBytes caps the size of a single analyzed text. 0 disables the cap.
	MaxTextBytes int `yaml:"max_text_bytes" env:"ANALYZER_MAX_TEXT_BYTES" env-default:"1048576"`
	BatchMaxDocs int `yaml:"batch_max_docs" env:"ANALYZER_BATCH_MAX_DOCS" env-default:"20"`
}

// SegmenterConfig holds paths for the jieba fallback segmenter. When all
// paths are empty the dictionaries bundled with gojieba are used.
type SegmenterConfig struct {
	DictPath      string `yaml:"dict_path"       env:"SEGMENTER_DICT_PATH"`
	HMMPath       string `yaml:"hmm_path"        env:"SEGMENTER_HMM_PATH"`
	UserDictPath  string `yaml:"user_dict_path"  env:"SEGMENTER_USER_DICT_PATH"`
	IDFPath       string `yaml:"idf_path"        env:"SEGMENTER_IDF_PATH"`
	StopWordsPath string `yaml:"stop_words_path" env:"SEGMENTER_STOP_WORDS_PATH"`
}

// WordListConfig holds word list limits.
type WordListConfig struct {
	MaxWordsPerList int `yaml:"max_words_per_list" env:"WORDLIST_MAX_WORDS_PER_LIST" env-default:"100000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
