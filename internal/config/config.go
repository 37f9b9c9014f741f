package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kitware/vtk-mcp/internal/scraper"
)

// Config holds application configuration.
type Config struct {
	// BaseURL is the root of the VTK Doxygen documentation site.
	BaseURL string `json:"base_url,omitempty"`

	// UserAgent is sent with every documentation fetch.
	UserAgent string `json:"user_agent,omitempty"`

	// FetchTimeoutSecs bounds each documentation fetch. There are no
	// retries; a timed-out lookup surfaces as not-found.
	FetchTimeoutSecs int `json:"fetch_timeout_secs,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          scraper.DefaultBaseURL,
		UserAgent:        scraper.DefaultUserAgent,
		FetchTimeoutSecs: int(scraper.DefaultTimeout.Seconds()),
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.vtk-mcp.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.BaseURL = overlay.BaseURL
	if result.BaseURL == "" {
		result.BaseURL = base.BaseURL
	}

	result.UserAgent = overlay.UserAgent
	if result.UserAgent == "" {
		result.UserAgent = base.UserAgent
	}

	result.FetchTimeoutSecs = overlay.FetchTimeoutSecs
	if result.FetchTimeoutSecs == 0 {
		result.FetchTimeoutSecs = base.FetchTimeoutSecs
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
