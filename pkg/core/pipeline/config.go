package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the run settings that are not credentials. Credentials
// (DATABASE_URL) stay in the environment.
type Config struct {
	Schema    string `yaml:"schema"`
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
}

// DefaultConfig matches the production defaults.
func DefaultConfig() Config {
	return Config{
		Schema:    "nabca",
		InputDir:  "data/analysis",
		OutputDir: ".",
	}
}

// LoadConfig reads a yaml config file over the defaults. A missing file is
// not an error; the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if schema := os.Getenv("REPORT_SCHEMA"); schema != "" {
		cfg.Schema = schema
	}
	return cfg, nil
}
