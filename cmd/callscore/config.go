package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/fwojciec/callscore"
	callhttp "github.com/fwojciec/callscore/http"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// DefaultAddr is the listen address of the serve command.
const DefaultAddr = "127.0.0.1:8080"

// Config holds settings read from the optional YAML file.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	Format   string        `yaml:"format"`
	Server   ServerConfig  `yaml:"server"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Endpoint: callhttp.DefaultEndpoint,
		Format:   FormatText,
		Server:   ServerConfig{Addr: DefaultAddr},
	}
}

// LoadConfig reads a YAML config file over the defaults. Unknown keys are
// rejected. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, callscore.Errorf(callscore.EINVALID, "cannot read config %s: %v", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, callscore.Errorf(callscore.EINVALID, "invalid config %s: %v", path, err)
	}
	if cfg.Timeout < 0 {
		return cfg, callscore.Errorf(callscore.EINVALID, "invalid config %s: timeout must not be negative", path)
	}
	return cfg, nil
}

// Override applies non-zero command-line values over the config.
func (c Config) Override(endpoint string, timeout time.Duration, format, addr string) Config {
	if endpoint != "" {
		c.Endpoint = endpoint
	}
	if timeout > 0 {
		c.Timeout = timeout
	}
	if format != "" {
		c.Format = format
	}
	if addr != "" {
		c.Server.Addr = addr
	}
	return c
}
