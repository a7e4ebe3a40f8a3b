package config

import (
	"time"
)

// Settings is the root configuration for the client library and the server
// catalog. Values come from defaults, an optional universe.yaml file, and
// UNIVERSE_-prefixed environment variables, in increasing priority.
type Settings struct {
	Client  ClientSettings `koanf:"client" json:"client" yaml:"client"`
	Log     LogSettings    `koanf:"log" json:"log" yaml:"log"`
	Servers []ServerEntry  `koanf:"servers" json:"servers" yaml:"servers" validate:"dive"`
}

// ClientSettings tunes the HTTP request executor.
type ClientSettings struct {
	// Timeout bounds each individual attempt, not the whole call.
	Timeout time.Duration `koanf:"timeout" json:"timeout" yaml:"timeout" validate:"gt=0"`
	// UserAgent identifies this client to remote APIs.
	UserAgent string `koanf:"useragent" json:"useragent" yaml:"useragent" validate:"required"`
	// MaxAttempts bounds the total attempts per call, first try included.
	MaxAttempts int `koanf:"maxattempts" json:"maxattempts" yaml:"maxattempts" validate:"min=1"`
	// BackoffBase is the linear backoff unit between retries.
	BackoffBase time.Duration `koanf:"backoffbase" json:"backoffbase" yaml:"backoffbase" validate:"gte=0"`
	// LogPayloads enables debug logging of request and response bodies.
	LogPayloads bool `koanf:"logpayloads" json:"logpayloads" yaml:"logpayloads"`
	// MaxPayloadLogBytes caps the logged body preview.
	MaxPayloadLogBytes int `koanf:"maxpayloadlogbytes" json:"maxpayloadlogbytes" yaml:"maxpayloadlogbytes" validate:"min=0"`
}

// LogSettings holds logging preferences.
type LogSettings struct {
	Level  string `koanf:"level" json:"level" yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Pretty bool   `koanf:"pretty" json:"pretty" yaml:"pretty"`
}

// ServerEntry describes one server to register on startup, in addition to
// the built-in catalog.
type ServerEntry struct {
	Name      string            `koanf:"name" json:"name" yaml:"name" validate:"required"`
	BaseURL   string            `koanf:"baseurl" json:"baseurl" yaml:"baseurl" validate:"required,url"`
	Version   string            `koanf:"version" json:"version" yaml:"version"`
	Endpoints map[string]string `koanf:"endpoints" json:"endpoints" yaml:"endpoints"`
	Headers   map[string]string `koanf:"headers" json:"headers" yaml:"headers"`
}
