package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/google/shlex"
)

// DefaultComposeFile is used when devctl.toml is absent or silent.
const DefaultComposeFile = "docker-compose.yml"

// Config represents the optional devctl.toml overrides. The zero value
// means built-in defaults for everything.
type Config struct {
	ComposeFile string            `toml:"compose_file"`
	Actions     map[string]string `toml:"actions"`
}

// Load reads the config at path. A missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// Compose returns the compose file the container targets should use.
func (c Config) Compose() string {
	if c.ComposeFile != "" {
		return c.ComposeFile
	}
	return DefaultComposeFile
}

// Command returns the override argv for target, split shell-style. ok is
// false when the config carries no override for that target.
func (c Config) Command(target string) (argv []string, ok bool, err error) {
	raw, exists := c.Actions[target]
	if !exists {
		return nil, false, nil
	}
	argv, err = shlex.Split(raw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse actions.%s: %w", target, err)
	}
	if len(argv) == 0 {
		return nil, false, fmt.Errorf("actions.%s is empty", target)
	}
	return argv, true, nil
}
