package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for secrethunter.
// All fields are optional; nil means "not set" so CLI flags win.
type FileConfig struct {
	Include        *string `yaml:"include"`
	Exclude        *string `yaml:"exclude"`
	Extensions     *string `yaml:"extensions"` // comma-separated, e.g. ".txt,.py,.env"
	MaxBytes       *int64  `yaml:"max_bytes"`
	Threads        *int    `yaml:"threads"`
	NoColor        *bool   `yaml:"no_color"`
	FailOn         *string `yaml:"fail_on"`
	DecodePolicy   *string `yaml:"decode_policy"` // replace | drop
	FollowSymlinks *bool   `yaml:"follow_symlinks"`
	NoCache        *bool   `yaml:"no_cache"`
	FileTimeout    *string `yaml:"file_timeout"` // duration, e.g. 30s
	Audit          *bool   `yaml:"audit"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the scan root.
// It supports .secrethunter.yml/.yaml and secrethunter.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".secrethunter.yml", ".secrethunter.yaml", "secrethunter.yml", "secrethunter.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the user-level config. ~/.secrethunter.yml (or .yaml) is
// checked first, then $XDG_CONFIG_HOME/secrethunter/config.yml (falling back
// to ~/.config when XDG_CONFIG_HOME is unset).
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	home, _ := os.UserHomeDir()
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" && home != "" {
		base = filepath.Join(home, ".config")
	}

	var paths []string
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".secrethunter.yml"),
			filepath.Join(home, ".secrethunter.yaml"))
	}
	if base != "" {
		paths = append(paths, filepath.Join(base, "secrethunter", "config.yml"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no global config")
}
