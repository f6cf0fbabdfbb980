// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests (URL fetching, rewrite suggestions).
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "content-analysis/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 responses (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// AssessmentConfig overrides an assessment's defaults. Zero-valued fields
// leave the default in place; map entries replace defaults key by key.
type AssessmentConfig struct {
	// Parameters holds numeric thresholds (e.g. "recommendedMinimum").
	Parameters map[string]float64 `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Scores holds the score returned per outcome (e.g. "good", "bad").
	Scores map[string]int `json:"scores,omitempty" yaml:"scores,omitempty"`

	// URLTitle is the article link opened around the assessment name.
	URLTitle string `json:"url_title,omitempty" yaml:"url_title,omitempty"`

	// URLCallToAction is the article link opened around the call to action.
	URLCallToAction string `json:"url_call_to_action,omitempty" yaml:"url_call_to_action,omitempty"`

	// Disabled removes the assessment from its suite.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Merge returns c with override applied on top. Neither input is modified.
func (c AssessmentConfig) Merge(override AssessmentConfig) AssessmentConfig {
	out := AssessmentConfig{
		Parameters:      make(map[string]float64, len(c.Parameters)+len(override.Parameters)),
		Scores:          make(map[string]int, len(c.Scores)+len(override.Scores)),
		URLTitle:        c.URLTitle,
		URLCallToAction: c.URLCallToAction,
		Disabled:        c.Disabled || override.Disabled,
	}
	for k, v := range c.Parameters {
		out.Parameters[k] = v
	}
	for k, v := range override.Parameters {
		out.Parameters[k] = v
	}
	for k, v := range c.Scores {
		out.Scores[k] = v
	}
	for k, v := range override.Scores {
		out.Scores[k] = v
	}
	if override.URLTitle != "" {
		out.URLTitle = override.URLTitle
	}
	if override.URLCallToAction != "" {
		out.URLCallToAction = override.URLCallToAction
	}
	return out
}

// AnalysisConfig holds settings for the analysis core.
type AnalysisConfig struct {
	// DefaultLocale applies to papers that carry no locale (default en_US).
	DefaultLocale string `json:"default_locale" yaml:"default_locale"`

	// Shortlinks maps "<identifier>" and "<identifier>CallToAction" to
	// article URLs. Entries here win over per-assessment URLs.
	Shortlinks map[string]string `json:"shortlinks,omitempty" yaml:"shortlinks,omitempty"`

	// Assessments holds per-identifier overrides.
	Assessments map[string]AssessmentConfig `json:"assessments,omitempty" yaml:"assessments,omitempty"`

	// Workers bounds concurrent paper analyses in batch runs (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the indexable store.
type StoreConfig struct {
	// IndexDir is the directory holding the SQLite database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`
}

// FetchConfig holds settings for fetching papers from URLs.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxBodyBytes caps the response size read from a URL (default 10 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// AIConfig holds shared settings for components that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier.
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SuggestConfig holds settings for rewrite suggestions.
type SuggestConfig struct {
	AIConfig `yaml:",inline"`

	// Timeout bounds a single suggestion call, retries included (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxFragments caps how many marked fragments are sent per paper (default 5).
	MaxFragments int `json:"max_fragments" yaml:"max_fragments"`
}

// Config groups all configuration sections.
type Config struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Fetch    FetchConfig    `json:"fetch" yaml:"fetch"`
	Suggest  SuggestConfig  `json:"suggest" yaml:"suggest"`
}
