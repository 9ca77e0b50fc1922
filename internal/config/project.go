package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level vesper.yaml project configuration (§6.4).
// Grounded on internal/ext.Config / LoadConfig / FindConfig
// trio, trimmed to the five options below.
type Config struct {
	// TargetVersion selects the destination-VM dialect. Empty/omitted means
	// "query the VM at startup" (config.VUnknown).
	TargetVersion string `yaml:"target_version,omitempty"`
	// NoStd is read from no_std; no pass in this module consults it, so
	// prelude registration and literal-wrapper insertion do not depend on it.
	NoStd bool `yaml:"no_std,omitempty"`
	// Input is "file" or "repl".
	Input string `yaml:"input,omitempty"`
	// Debug enables extra codegen assertions (CodeGenUnit.Finish's stack-depth
	// check); mangled names are the same with or without it.
	Debug bool `yaml:"debug,omitempty"`
	// ProtoExportAddr, if set, starts internal/introspect's debug gRPC
	// listener on this address (e.g. "localhost:7777").
	ProtoExportAddr string `yaml:"proto_export_addr,omitempty"`
}

// ResolvedTargetVersion parses TargetVersion into a config.TargetVersion,
// defaulting to VUnknown (query-at-startup) when unset or unrecognized.
func (c *Config) ResolvedTargetVersion() TargetVersion {
	switch c.TargetVersion {
	case "v7":
		return V7
	case "v9":
		return V9
	case "v10":
		return V10
	case "v11":
		return V11
	default:
		return VUnknown
	}
}

// ResolvedInputMode parses Input into an InputMode, defaulting to File.
func (c *Config) ResolvedInputMode() InputMode {
	if c.Input == "repl" {
		return REPL
	}
	return File
}

// LoadProjectConfig reads and parses a vesper.yaml file.
func LoadProjectConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// FindProjectConfig searches for vesper.yaml starting from dir and walking
// up to parent directories, same discovery strategy as the 's
// ext.FindConfig. Returns "" (no error) if none is found by the filesystem
// root.
func FindProjectConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range []string{"vesper.yaml", "vesper.yml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
