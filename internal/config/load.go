package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("neoncity-config.schema.json", schemaSource)

// Load reads a YAML file and overlays it on Default. Keys missing from the
// file keep their default values; lanes, when present, replace the default
// lane table as a whole. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML document.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(string(raw)) == "" {
		return cfg, nil
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	// Round-trip through JSON so the validator sees float64/string/map values
	// rather than yaml's int and typed-map shapes.
	js, err := json.Marshal(doc)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	var generic any
	if err := json.Unmarshal(js, &generic); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	if err := schema.Validate(generic); err != nil {
		return Config{}, fmt.Errorf("schema: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
