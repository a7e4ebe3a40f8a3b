package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	envprovider "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is the optional YAML file consulted by Load.
const DefaultFile = "universe.yaml"

// envPrefix namespaces the environment variables consulted by Load.
const envPrefix = "UNIVERSE_"

var validate = validator.New()

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. universe.yaml in the working directory
// 3. Default values (lowest priority)
func Load() (*Settings, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The YAML file is optional.
	_ = k.Load(file.Provider(DefaultFile), yaml.Parser())

	if err := k.Load(envprovider.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return unmarshal(k)
}

// LoadBytes parses raw YAML on top of the defaults, skipping files and the
// environment. Useful for embedding configuration and for tests.
func LoadBytes(data []byte) (*Settings, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Settings, error) {
	var cfg Settings
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"client.timeout":            "30s",
		"client.useragent":          "UniverseAPI/1.0.0",
		"client.maxattempts":        3,
		"client.backoffbase":        "2s",
		"client.logpayloads":        false,
		"client.maxpayloadlogbytes": 1024,

		"log.level":  "info",
		"log.pretty": false,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}
