// Package config loads the project lint configuration. Two spellings are
// accepted: .nativelint.yml (or .yaml) and .nativelint.toml. The file is
// searched upward from the working directory so nested packages share the
// repository's configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"nativelint/internal/diag"
)

// candidates in lookup order.
var candidates = []string{".nativelint.yml", ".nativelint.yaml", ".nativelint.toml"}

// RuleConfig overrides one rule's defaults. Nil pointers mean "keep the
// rule's own default".
type RuleConfig struct {
	Enabled  *bool  `yaml:"enabled" toml:"enabled"`
	Severity string `yaml:"severity" toml:"severity"`
	Fix      *bool  `yaml:"fix" toml:"fix"`
}

// Config is the parsed configuration file.
type Config struct {
	// Exclude lists path patterns to skip, in doublestar syntax: ** crosses
	// directory separators, so "src/**/gen.ts" excludes at any depth.
	Exclude []string `yaml:"exclude" toml:"exclude"`
	// ChangedBase is the default base ref for the changed-file set.
	ChangedBase string `yaml:"changed_base" toml:"changed_base"`
	// Rules holds per-rule overrides keyed by rule name.
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{}
}

// Load searches dir and its parents for a configuration file and parses the
// first one found. It returns the config, the path of the file used ("" when
// none was found), and an error only for unreadable or malformed files.
func Load(dir string) (Config, string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Default(), "", err
	}
	for {
		for _, name := range candidates {
			path := filepath.Join(abs, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := Parse(path)
			if err != nil {
				return Default(), path, err
			}
			return cfg, path, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return Default(), "", nil
		}
		abs = parent
	}
}

// Parse reads and decodes one configuration file by extension.
func Parse(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from config discovery
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return Default(), fmt.Errorf("config %s: unsupported extension", path)
	}

	if err := cfg.validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for name, rc := range c.Rules {
		if rc.Severity == "" {
			continue
		}
		if _, ok := diag.ParseSeverity(rc.Severity); !ok {
			return fmt.Errorf("rule %q: unknown severity %q", name, rc.Severity)
		}
	}
	return nil
}

// Rule returns the overrides for name; the zero value means no overrides.
func (c Config) Rule(name string) RuleConfig {
	return c.Rules[name]
}

// Enabled reports whether the named rule should run, given its default.
func (c Config) Enabled(name string) bool {
	rc := c.Rules[name]
	if rc.Enabled == nil {
		return true
	}
	return *rc.Enabled
}

// Severity resolves the effective severity for a rule.
func (c Config) Severity(name string, def diag.Severity) diag.Severity {
	rc := c.Rules[name]
	if rc.Severity == "" {
		return def
	}
	if sev, ok := diag.ParseSeverity(rc.Severity); ok {
		return sev
	}
	return def
}

// FixEnabled resolves whether the rule may suggest fixes, given its default.
func (c Config) FixEnabled(name string, def bool) bool {
	rc := c.Rules[name]
	if rc.Fix == nil {
		return def
	}
	return *rc.Fix
}

// Excluded reports whether the relative path matches an exclude pattern.
// Patterns match the full slash path; a pattern without a separator behaves
// like a gitignore name, matching the file name anywhere and whole
// directories by name.
func (c Config) Excluded(relPath string) bool {
	slash := filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, slash); ok {
			return true
		}
		if strings.Contains(pattern, "/") {
			continue
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
		if ok, _ := doublestar.Match("**/"+pattern+"/**", slash); ok {
			return true
		}
	}
	return false
}
