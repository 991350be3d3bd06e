package prepush

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the name of the optional configuration file.
const DefaultConfigFile = ".commit-msg-lint.yml"

const defaultMainRef = "main"

// Config represents the configuration of the pre-push commit check.
//
// The commit message grammar itself is fixed and can not be configured.
type Config struct {
	Settings Settings `yaml:"settings,omitempty"`
}

// Settings contains global configuration options.
type Settings struct {
	MainRef          string   `yaml:"main_ref,omitempty"`
	FailFast         bool     `yaml:"fail_fast,omitempty"`
	SkipMergeCommits *bool    `yaml:"skip_merge_commits,omitempty"`
	SkipAuthors      []string `yaml:"skip_authors,omitempty"`

	// skipAuthors holds the compiled SkipAuthors patterns (not in YAML)
	skipAuthors []*regexp.Regexp
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)

	return config
}

// LoadConfig loads and validates configuration from the specified directory.
// A missing config file is not an error, the defaults are used instead.
func LoadConfig(repoPath string) (*Config, error) {
	configPath := filepath.Join(repoPath, DefaultConfigFile)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&config)

	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Settings.MainRef == "" {
		config.Settings.MainRef = defaultMainRef
	}

	if config.Settings.SkipMergeCommits == nil {
		skip := true
		config.Settings.SkipMergeCommits = &skip
	}
}

func validateConfig(config *Config) error {
	config.Settings.skipAuthors = make([]*regexp.Regexp, 0, len(config.Settings.SkipAuthors))

	for i, pattern := range config.Settings.SkipAuthors {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("skip_authors[%d]: invalid regex pattern %q: %w", i, pattern, err)
		}

		config.Settings.skipAuthors = append(config.Settings.skipAuthors, re)
	}

	return nil
}

// skipMergeCommits reports whether merge commits are excluded from checks.
func (s Settings) skipMergeCommits() bool {
	return s.SkipMergeCommits == nil || *s.SkipMergeCommits
}

// shouldSkipAuthor checks if a commit author matches one of the skip_authors
// patterns, either by name or by email.
func (s Settings) shouldSkipAuthor(name string, email string) bool {
	for _, re := range s.skipAuthors {
		if re.MatchString(name) || re.MatchString(email) {
			return true
		}
	}

	return false
}
