package config

import (
	"time"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	AI       AIConfig       `mapstructure:"ai"`
	Sector   SectorConfig   `mapstructure:"sector"`
	Renderer RendererConfig `mapstructure:"renderer"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	BodyLimit    int           `mapstructure:"body_limit"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AIConfig carries no API keys; those come from each backend's own
// environment variable or from the request.
type AIConfig struct {
	DefaultBackend string        `mapstructure:"default_backend"`
	DefaultModel   string        `mapstructure:"default_model"`
	MaxTokens      int           `mapstructure:"max_tokens"`
	Temperature    float64       `mapstructure:"temperature"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RegistryFile   string        `mapstructure:"registry_file"`
}

type SectorConfig struct {
	CatalogFile string `mapstructure:"catalog_file"`
}

type RendererConfig struct {
	Engine       string        `mapstructure:"engine"`
	ChromePath   string        `mapstructure:"chrome_path"`
	OutputDir    string        `mapstructure:"output_dir"`
	Timeout      time.Duration `mapstructure:"timeout"`
	DefaultTheme string        `mapstructure:"default_theme"`
}
