package util

import (
	"log/slog"
	"os"

	"github.com/go-yaml/yaml"
)

// Config is shield base configuration
type Config struct {
	Server Server `yaml:"server"`
	Roster Roster `yaml:"roster"`
}

type Server struct {
	Dsn           string `yaml:"dsn"`
	RedisAddr     string `yaml:"redisAddr"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	ListenAddr    string `yaml:"listenAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Roster struct {
	// AdminSecret unlocks edit/delete on any character. Empty disables the override.
	AdminSecret string `yaml:"adminSecret"`
	SiteURL     string `yaml:"siteUrl"`
}

// Load loads shield config from given path
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open configuration file", slog.String("error", err.Error()))
		return err
	}
	defer f.Close()

	err = yaml.NewDecoder(f).Decode(&c)
	if err != nil {
		slog.Error("failed to parse configuration file", slog.String("error", err.Error()))
		return err
	}

	return nil
}
