package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the detector.
type Config struct {
	Exclude      []string `yaml:"exclude"`       // Package ids dropped from the analysis entirely
	ToolPrefixes []string `yaml:"tool_prefixes"` // Extra tool/framework prefixes
	Extensions   []string `yaml:"extensions"`    // Candidate file extension allow-list
	IgnoreDirs   []string `yaml:"ignore_dirs"`   // Directory names excluded from walking
	Workers      int      `yaml:"workers"`       // Concurrent scan workers (0 = auto)
	Detail       bool     `yaml:"detail"`        // Always include evidence detail
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment variables
// in list entries.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Exclude = expandAll(cfg.Exclude)
	cfg.ToolPrefixes = expandAll(cfg.ToolPrefixes)

	if validateErr := validate(&cfg); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".unused-nuget.yaml",
		".unused-nuget.yml",
		"unused-nuget.yaml",
		"unused-nuget.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandAll expands ${ENV_VAR} references in every entry and drops entries
// that become empty.
func expandAll(entries []string) []string {
	var out []string
	for _, entry := range entries {
		resolved := envVarPattern.ReplaceAllStringFunc(entry, func(match string) string {
			varName := envVarPattern.FindStringSubmatch(match)[1]
			if val := os.Getenv(varName); val != "" {
				return val
			}
			logger.Warnf("Environment variable %q is not set", varName)
			return ""
		})
		if resolved = strings.TrimSpace(resolved); resolved != "" {
			out = append(out, resolved)
		}
	}
	return out
}

// validate checks for malformed configuration values.
func validate(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", cfg.Workers)
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extensions[%d] must start with a dot, got %q", i, ext)
		}
	}

	for i, dir := range cfg.IgnoreDirs {
		if strings.ContainsAny(dir, `/\`) {
			return fmt.Errorf("ignore_dirs[%d] must be a bare directory name, got %q", i, dir)
		}
	}

	return nil
}
