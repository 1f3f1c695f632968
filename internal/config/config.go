// Package config loads YAML configuration for book generation.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2epub/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength    = 200  // Book title
	MaxCreatorLength  = 100  // Creator name
	MaxLanguageLength = 10   // BCP 47 tag, e.g. "en", "pt-BR"
	MaxPathLength     = 2048 // Output directory
	MaxStyleLength    = 2048 // Style name or path
)

// Config holds all configuration for book generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	CSS      CSSConfig      `yaml:"css"`
	Metadata MetadataConfig `yaml:"metadata"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// CSSConfig defines CSS styling options.
type CSSConfig struct {
	Style string `yaml:"style"` // Built-in style name or CSS file path (empty = default)
}

// MetadataConfig defines package metadata overrides.
type MetadataConfig struct {
	Title    string `yaml:"title"`    // Empty = derived from content or filename
	Creator  string `yaml:"creator"`  // Empty = fixed default
	Language string `yaml:"language"` // Empty = fixed default
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a YAML file path.
// Unknown fields are rejected so typos surface instead of being ignored.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field lengths. Called automatically by LoadConfig, but
// available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("metadata.title", c.Metadata.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("metadata.creator", c.Metadata.Creator, MaxCreatorLength); err != nil {
		return err
	}
	if err := validateFieldLength("metadata.language", c.Metadata.Language, MaxLanguageLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("css.style", c.CSS.Style, MaxStyleLength); err != nil {
		return err
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
