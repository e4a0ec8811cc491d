package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source strategy names accepted in config
const (
	SourceTranscripts = "transcripts"
	SourceSessions    = "sessions"
)

// Config is the agent's configuration surface. Values are resolved in
// order: defaults, then YAML file, then TASKWATCH_* environment variables;
// command flags override all of these.
type Config struct {
	// APIURL is the task store base URL
	APIURL string `yaml:"api_url"`
	// PollIntervalMS is the sync loop tick in milliseconds
	PollIntervalMS int `yaml:"poll_interval_ms"`
	// Source selects the polling strategy: "transcripts" or "sessions"
	Source string `yaml:"source"`
	// TranscriptDir is the directory scanned by the transcripts strategy
	TranscriptDir string `yaml:"transcript_dir"`
	// SessionAPIURL is the session API base URL for the sessions strategy
	SessionAPIURL string `yaml:"session_api_url"`
	// SessionKinds filters which session kinds are polled
	SessionKinds []string `yaml:"session_kinds"`
	// MaxHistory bounds messages fetched per session per poll
	MaxHistory int `yaml:"max_history"`
	// CacheWindowMultiple scales MaxHistory into the seen-cache cap
	CacheWindowMultiple int `yaml:"cache_window_multiple"`
	// RequestTimeoutMS bounds each HTTP call made by the agent
	RequestTimeoutMS int `yaml:"request_timeout_ms"`
	// LogLevel is one of error, warn, info, debug
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		APIURL:              "http://localhost:3000",
		PollIntervalMS:      5000,
		Source:              SourceTranscripts,
		TranscriptDir:       DefaultTranscriptDir(),
		SessionAPIURL:       "http://localhost:3001",
		SessionKinds:        []string{"main", "subagent"},
		MaxHistory:          20,
		CacheWindowMultiple: DefaultCacheMultiple,
		RequestTimeoutMS:    10000,
		LogLevel:            "info",
	}
}

// LoadConfig resolves the configuration: defaults, optional YAML file,
// then environment overrides. An empty path skips the file step; a named
// file that is missing or malformed is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays TASKWATCH_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("TASKWATCH_API_URL"); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv("TASKWATCH_POLL_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PollIntervalMS = n
		} else {
			LogWarn("ignoring invalid TASKWATCH_POLL_INTERVAL_MS: %q", v)
		}
	}
	if v := os.Getenv("TASKWATCH_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("TASKWATCH_TRANSCRIPT_DIR"); v != "" {
		c.TranscriptDir = v
	}
	if v := os.Getenv("TASKWATCH_SESSION_API_URL"); v != "" {
		c.SessionAPIURL = v
	}
	if v := os.Getenv("TASKWATCH_SESSION_KINDS"); v != "" {
		var kinds []string
		for _, kind := range strings.Split(v, ",") {
			if kind = strings.TrimSpace(kind); kind != "" {
				kinds = append(kinds, kind)
			}
		}
		c.SessionKinds = kinds
	}
	if v := os.Getenv("TASKWATCH_MAX_HISTORY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxHistory = n
		} else {
			LogWarn("ignoring invalid TASKWATCH_MAX_HISTORY: %q", v)
		}
	}
}

// Validate checks the resolved configuration for values the agent cannot
// run with
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	switch c.Source {
	case SourceTranscripts:
		if c.TranscriptDir == "" {
			return fmt.Errorf("transcript_dir must be set for the transcripts source")
		}
	case SourceSessions:
		if c.SessionAPIURL == "" {
			return fmt.Errorf("session_api_url must be set for the sessions source")
		}
	default:
		return fmt.Errorf("unknown source: %q (expected %s or %s)", c.Source, SourceTranscripts, SourceSessions)
	}
	return nil
}

// ApplyLogLevel sets the global log level from the configured value. An
// unknown value is warned about and leaves the level unchanged.
func (c *Config) ApplyLogLevel() {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		LogWarn("%v, keeping current log level", err)
		return
	}
	SetLogLevel(level)
}

// PollInterval returns the tick as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// RequestTimeout returns the per-call HTTP timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// NewMessageSource builds the polling strategy the config selects
func (c *Config) NewMessageSource() (MessageSource, error) {
	switch c.Source {
	case SourceTranscripts:
		return NewTranscriptSource(c.TranscriptDir), nil
	case SourceSessions:
		return NewSessionAPISource(c.SessionAPIURL, c.SessionKinds, c.MaxHistory, c.RequestTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown source: %q", c.Source)
	}
}
