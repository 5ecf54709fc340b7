// Package config loads service configuration from defaults, an optional YAML
// file, and SHIELD_-prefixed environment variables, in that order of
// precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mcuadros/go-defaults"
)

const (
	// envPrefix is the prefix for environment variable overrides
	envPrefix = "SHIELD_"
	// defaultConfigFilePath is the config file used when none is given
	defaultConfigFilePath = "./config/.config.yaml"
)

// Config holds the service configuration.
type Config struct {
	// Server holds HTTP server settings
	Server Server `json:"server" koanf:"server"`
	// Storage holds persistence settings
	Storage Storage `json:"storage" koanf:"storage"`
	// Tracker holds request tracking settings
	Tracker Tracker `json:"tracker" koanf:"tracker"`
	// GPC holds Global Privacy Control settings
	GPC GPC `json:"gpc" koanf:"gpc"`
}

// Server holds HTTP server settings.
type Server struct {
	// Debug enables debug logging
	Debug bool `json:"debug" koanf:"debug" default:"false"`
	// Pretty enables human readable logging output
	Pretty bool `json:"pretty" koanf:"pretty" default:"false"`
	// Listen is the address and port the server binds to
	Listen string `json:"listen" koanf:"listen" default:":8080"`
	// ReadTimeout is the maximum duration for reading a request
	ReadTimeout time.Duration `json:"readTimeout" koanf:"readtimeout" default:"15s"`
	// WriteTimeout is the maximum duration for writing a response
	WriteTimeout time.Duration `json:"writeTimeout" koanf:"writetimeout" default:"30s"`
	// ShutdownGracePeriod is how long in-flight requests get on shutdown
	ShutdownGracePeriod time.Duration `json:"shutdownGracePeriod" koanf:"shutdowngraceperiod" default:"10s"`
	// MaxBodySize caps request body reads in bytes
	MaxBodySize int64 `json:"maxBodySize" koanf:"maxbodysize" default:"1048576"`
	// AllowedOrigins lists origins permitted to start opt-out sessions;
	// empty allows any origin
	AllowedOrigins []string `json:"allowedOrigins" koanf:"allowedorigins"`
}

// Storage holds persistence settings.
type Storage struct {
	// Path is the bbolt database file location
	Path string `json:"path" koanf:"path" default:"./shield.db"`
}

// Tracker holds request tracking settings.
type Tracker struct {
	// UpcomingWindowDays is the deadline lookahead for the upcoming
	// requests listing
	UpcomingWindowDays int `json:"upcomingWindowDays" koanf:"upcomingwindowdays" default:"7"`
}

// GPC holds Global Privacy Control settings.
type GPC struct {
	// EnabledByDefault turns the GPC signal on for fresh installations
	EnabledByDefault bool `json:"enabledByDefault" koanf:"enabledbydefault" default:"true"`
}

// Load reads configuration from the given file path, falling back to the
// default location, then applies environment overrides. A missing config
// file is not an error; defaults and environment still apply.
func Load(cfgFile *string) (*Config, error) {
	k := koanf.New(".")

	cfg := &Config{}
	defaults.SetDefaults(cfg)

	if cfgFile == nil || *cfgFile == "" {
		path := defaultConfigFilePath
		cfgFile = &path
	}

	if _, err := os.Stat(*cfgFile); err == nil {
		if err := k.Load(file.Provider(*cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", *cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigUnmarshal, err)
	}

	return cfg, nil
}

// envKeyTransform maps SHIELD_SERVER_LISTEN to server.listen; koanf keys
// are kept lowercase so environment overrides line up.
func envKeyTransform(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
}
