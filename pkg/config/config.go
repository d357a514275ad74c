// Package config holds the string constants controls use to name their
// presentation classes and attributes, optionally loaded from control.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/control/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "control.yaml"

// Lookup keys accepted by Config.Get.
const (
	KeyUIPrefix         = "uiPrefix"
	KeyInstanceAttr     = "instanceAttr"
	KeyIDAttrPrefix     = "idAttrPrefix"
	KeyUIClassPrefix    = "uiClassPrefix"
	KeyUIClassControl   = "uiClassControl"
	KeySkinClassPrefix  = "skinClassPrefix"
	KeyStateClassPrefix = "stateClassPrefix"
	KeyIDPrefix         = "idPrefix"
)

// Config represents control.yaml.
type Config struct {
	// Version is the configuration schema version (semver, major v1).
	Version string `yaml:"version,omitempty"`
	// UIPrefix prefixes declarative attributes (data-ui-type, data-ui-id).
	UIPrefix string `yaml:"uiPrefix,omitempty"`
	// InstanceAttr is the attribute holding the control id on its main node.
	InstanceAttr string `yaml:"instanceAttr,omitempty"`
	// IDAttrPrefix prefixes presentation ids.
	IDAttrPrefix string `yaml:"idAttrPrefix,omitempty"`
	// UIClassPrefix prefixes type and part classes.
	UIClassPrefix string `yaml:"uiClassPrefix,omitempty"`
	// UIClassControl is the class shared by every control.
	UIClassControl string `yaml:"uiClassControl,omitempty"`
	// SkinClassPrefix prefixes skin classes.
	SkinClassPrefix string `yaml:"skinClassPrefix,omitempty"`
	// StateClassPrefix prefixes state classes.
	StateClassPrefix string `yaml:"stateClassPrefix,omitempty"`
	// IDPrefix prefixes generated control ids.
	IDPrefix string `yaml:"idPrefix,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:          "v1.0.0",
		UIPrefix:         "data-ui",
		InstanceAttr:     "data-ctrl-id",
		IDAttrPrefix:     "ctrl",
		UIClassPrefix:    "ui",
		UIClassControl:   "ctrl",
		SkinClassPrefix:  "skin",
		StateClassPrefix: "state",
		IDPrefix:         "ui",
	}
}

// Parse decodes YAML data and fills unset fields from Default.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.Parse", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	cfg.merge(Default())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// LoadOptional reads control.yaml from dir if present, otherwise returns Default.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, configError("config.LoadOptional", err)
	}
	return Load(path)
}

// Validate checks the schema version and that no key resolves to an empty string.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return configError("config.Validate", err)
	}
	for _, key := range Keys() {
		if strings.TrimSpace(c.Get(key)) == "" {
			return configError("config.Validate", fmt.Errorf("%s must not be empty", key))
		}
	}
	return nil
}

// CheckVersion accepts semantic versions with major version v1.
func CheckVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a valid semantic version", v)
	}
	if major := semver.Major(v); major != "v1" {
		return fmt.Errorf("unsupported version %s (major %s, want v1)", v, major)
	}
	return nil
}

// Get returns the string constant for key, or "" for unknown keys.
func (c *Config) Get(key string) string {
	switch key {
	case KeyUIPrefix:
		return c.UIPrefix
	case KeyInstanceAttr:
		return c.InstanceAttr
	case KeyIDAttrPrefix:
		return c.IDAttrPrefix
	case KeyUIClassPrefix:
		return c.UIClassPrefix
	case KeyUIClassControl:
		return c.UIClassControl
	case KeySkinClassPrefix:
		return c.SkinClassPrefix
	case KeyStateClassPrefix:
		return c.StateClassPrefix
	case KeyIDPrefix:
		return c.IDPrefix
	default:
		return ""
	}
}

// Keys lists every key accepted by Get.
func Keys() []string {
	return []string{
		KeyUIPrefix,
		KeyInstanceAttr,
		KeyIDAttrPrefix,
		KeyUIClassPrefix,
		KeyUIClassControl,
		KeySkinClassPrefix,
		KeyStateClassPrefix,
		KeyIDPrefix,
	}
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) merge(def *Config) {
	fill := func(dst *string, src string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = src
		}
	}
	fill(&c.Version, def.Version)
	fill(&c.UIPrefix, def.UIPrefix)
	fill(&c.InstanceAttr, def.InstanceAttr)
	fill(&c.IDAttrPrefix, def.IDAttrPrefix)
	fill(&c.UIClassPrefix, def.UIClassPrefix)
	fill(&c.UIClassControl, def.UIClassControl)
	fill(&c.SkinClassPrefix, def.SkinClassPrefix)
	fill(&c.StateClassPrefix, def.StateClassPrefix)
	fill(&c.IDPrefix, def.IDPrefix)
}

func configError(op string, err error) error {
	return &errors.ControlError{Op: op, Kind: errors.KindConfig, Err: err}
}
