package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "cv-builder")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 150*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ai.default_backend", "mock")
	v.SetDefault("ai.default_model", "")
	v.SetDefault("ai.max_tokens", 800)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.registry_file", "")

	v.SetDefault("sector.catalog_file", "")

	v.SetDefault("renderer.engine", "chromedp")
	v.SetDefault("renderer.chrome_path", "")
	v.SetDefault("renderer.output_dir", filepath.Join(os.TempDir(), "cv-builder"))
	v.SetDefault("renderer.timeout", 60*time.Second)
	v.SetDefault("renderer.default_theme", "modern")
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.AI.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("ai.max_tokens must be positive"))
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		errs = append(errs, fmt.Errorf("ai.temperature %.2f outside [0, 2]", c.AI.Temperature))
	}
	if c.AI.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("ai.timeout must be positive"))
	}
	if c.Renderer.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("renderer.timeout must be positive"))
	}
	switch c.Renderer.Engine {
	case "chromedp", "playwright":
	default:
		errs = append(errs, fmt.Errorf("renderer.engine %q is not chromedp or playwright", c.Renderer.Engine))
	}
	return errors.Join(errs...)
}
