package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the commented default config, creating parent
// directories as needed.
func WriteDefault(path string) error {
	return writeFile(path, []byte(defaultConfig))
}

// Write stores the resolved config as TOML. The file is readable only by
// its owner since it may carry the OMDb API key.
func (c *Config) Write(path string) error {
	var buf bytes.Buffer
	buf.WriteString("# flicks configuration, resolved by config init --from-current\n\n")
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
