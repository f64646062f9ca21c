// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"blist_converter/platform/apperr"
	"blist_converter/platform/validator"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// PipelineConfig provides the settings consumed by the buddy list pipeline.
type PipelineConfig interface {
	GetOwnNumber() string
	GetExcludeCategories() []string
	GetDefaultGroup() string
	GetRegion() string
}

// ReaderConfig provides settings for parsing the input document.
type ReaderConfig interface {
	GetInputFile() string
	GetFileType() string
	GetEscapeChar() string
	GetInputEncoding() string
}

// RenderConfig provides settings for writing the output document.
type RenderConfig interface {
	GetOutputFile() string
	GetTemplateFile() string
	GetTemplateSyntax() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string   `yaml:"env"`
	OwnNumber         string   `yaml:"own_number" validate:"required,number"`
	ExcludeCategories []string `yaml:"exclude_categories"`
	DefaultGroup      string   `yaml:"default_group" validate:"required"`
	Region            string   `yaml:"country_code" validate:"required,phoneregion"`
	EscapeChar        string   `yaml:"escape_char" validate:"max=1"`
	FileType          string   `yaml:"file_type" validate:"omitempty,oneof=vcf csv"`
	TemplateFile      string   `yaml:"template"`
	TemplateSyntax    string   `yaml:"template_syntax" validate:"omitempty,oneof=go mustache"`
	InputEncoding     string   `yaml:"input_encoding"`
	InputFile         string   `yaml:"-"`
	OutputFile        string   `yaml:"-"`
}

// =============================================================================
// Interface Implementations
// =============================================================================

// PipelineConfig implementation
func (c *Config) GetOwnNumber() string { return c.OwnNumber }
func (c *Config) GetExcludeCategories() []string {
	return append([]string(nil), c.ExcludeCategories...)
}
func (c *Config) GetDefaultGroup() string { return c.DefaultGroup }
func (c *Config) GetRegion() string       { return c.Region }

// ReaderConfig implementation
func (c *Config) GetInputFile() string     { return c.InputFile }
func (c *Config) GetFileType() string      { return c.FileType }
func (c *Config) GetEscapeChar() string    { return c.EscapeChar }
func (c *Config) GetInputEncoding() string { return c.InputEncoding }

// RenderConfig implementation
func (c *Config) GetOutputFile() string     { return c.OutputFile }
func (c *Config) GetTemplateFile() string   { return c.TemplateFile }
func (c *Config) GetTemplateSyntax() string { return c.TemplateSyntax }

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("APP_ENV", "production"),
		OwnNumber:         getEnv("BLIST_OWN_NUMBER", "0"),
		ExcludeCategories: splitCSV(getEnv("BLIST_EXCLUDE_CATEGORIES", "Archiv")),
		DefaultGroup:      getEnv("BLIST_DEFAULT_GROUP", "others"),
		Region:            strings.ToUpper(getEnv("BLIST_COUNTRY_CODE", "DE")),
		EscapeChar:        getEnv("BLIST_CSV_ESCAPE", `\`),
		FileType:          strings.ToLower(getEnv("BLIST_FILE_TYPE", "")),
		TemplateFile:      getEnv("BLIST_TEMPLATE", ""),
		TemplateSyntax:    strings.ToLower(getEnv("BLIST_TEMPLATE_SYNTAX", "")),
		InputEncoding:     getEnv("BLIST_INPUT_ENCODING", "utf-8"),
	}

	return cfg, nil
}

// MergeFile overlays the YAML file at path onto c. Keys missing from the file
// leave the current values untouched.
func (c *Config) MergeFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperr.Wrap(apperr.KindNotFound, "config file not found", err).WithOp("config.MergeFile")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to read config file", err).WithOp("config.MergeFile")
	}

	if err := yaml.Unmarshal(content, c); err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid config file "+path, err).WithOp("config.MergeFile")
	}
	c.Region = strings.ToUpper(c.Region)
	c.FileType = strings.ToLower(c.FileType)
	return nil
}

// Validate checks c with val and reports every failing field at once.
func (c *Config) Validate(val *validator.Validator) error {
	if err := val.Struct(c); err != nil {
		return apperr.Validation(fmt.Sprintf("invalid configuration: %s", validator.Describe(err))).WithOp("config.Validate")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
