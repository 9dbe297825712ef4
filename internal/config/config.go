package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the report API server.
type ServerConfig struct {
	Port               int      `yaml:"port" mapstructure:"port"`
	AccessPassword     string   `yaml:"access_password" mapstructure:"access_password"`
	AllowedOrigins     []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute" mapstructure:"rate_limit_per_minute"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CSRD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	// Registered empty so AutomaticEnv picks the key up for Unmarshal.
	v.SetDefault("server.access_password", "")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit_per_minute", 120)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration for the given run mode.
func (c *Config) Validate(mode string) error {
	switch mode {
	case "cli":
		return nil
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			return eris.New("config: server.port must be > 0 and <= 65535")
		}
		if c.Server.RateLimitPerMinute < 1 || c.Server.RateLimitPerMinute > 10000 {
			return eris.New("config: server.rate_limit_per_minute must be between 1 and 10000")
		}
		return nil
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
