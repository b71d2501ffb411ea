// Package config loads service configuration from an optional config file,
// a .env file, and the process environment, in ascending precedence.
//
// The model API key is deliberately NOT part of this struct: it is read from
// the environment at generation time only, so the UI keeps serving when the
// key is absent.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyEnv is the only credential source for the model client.
const APIKeyEnv = "GEMINI_API_KEY"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Model   ModelConfig   `mapstructure:"model"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type ModelConfig struct {
	// Name is the fixed model identifier; change it here only when the
	// upstream model name changes.
	Name string `mapstructure:"name"`
	// Temperature is fixed at 0.7 by default: repeated calls with identical
	// input may yield different text, which is intentional.
	Temperature float64 `mapstructure:"temperature"`
	// MaxOutputTokens caps a single completion.
	MaxOutputTokens int32 `mapstructure:"max_output_tokens"`
}

type PathsConfig struct {
	Personas       string `mapstructure:"personas"`
	SystemPrompt   string `mapstructure:"system_prompt"`
	ScenarioPrompt string `mapstructure:"scenario_prompt"`
	WebDir         string `mapstructure:"web_dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration. A missing config file or .env is not an error;
// the defaults describe a complete working setup.
func Load() (*Config, error) {
	// Best effort; the environment may already be populated.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("ACCESSLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("model.name", "gemini-2.5-flash-lite")
	v.SetDefault("model.temperature", 0.7)
	v.SetDefault("model.max_output_tokens", 2048)
	v.SetDefault("paths.personas", "data/sample_personas.json")
	v.SetDefault("paths.system_prompt", "prompts/system_prompt.txt")
	v.SetDefault("paths.scenario_prompt", "prompts/scenario_generation_prompt.txt")
	v.SetDefault("paths.web_dir", "web")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Model.Name == "" {
		return fmt.Errorf("model.name must not be empty")
	}
	if cfg.Paths.Personas == "" || cfg.Paths.SystemPrompt == "" || cfg.Paths.ScenarioPrompt == "" {
		return fmt.Errorf("paths.personas, paths.system_prompt and paths.scenario_prompt are required")
	}
	return nil
}
