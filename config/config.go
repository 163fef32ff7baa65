package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/configparser"
	"github.com/Temutjin2k/bike-sharing-dashboard/pkg/logger"
)

const dotEnvFile = ".env"

// Errors
var (
	ErrInvalidPort     = errors.New("invalid server port")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidSize     = errors.New("invalid ui size")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server ServerConfig `env:",squash"`
		Data   DataConfig   `env:",squash"`
		Log    LogConfig    `env:",squash"`
		UI     UIConfig     `env:",squash"`
	}

	ServerConfig struct {
		Host            string        `env:"SERVER_HOST" default:"0.0.0.0"`
		Port            string        `env:"SERVER_PORT" default:"8501"`
		ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" default:"10s"`
		WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"5s"`
	}

	DataConfig struct {
		HourlyPath string `env:"DATA_HOURLY_PATH" default:"hour_df_2012_cleaned.csv"`
		DailyPath  string `env:"DATA_DAILY_PATH" default:"day_df_summer_2011_cleaned.csv"`
		ImagePath  string `env:"DATA_IMAGE_PATH" default:"bike.png"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"INFO"`
	}

	UIConfig struct {
		Locale       string `env:"UI_LOCALE" default:"en"`
		SidebarWidth int    `env:"UI_SIDEBAR_WIDTH" default:"300"`
		ChartWidth   int    `env:"UI_CHART_WIDTH" default:"960"`
		ChartHeight  int    `env:"UI_CHART_HEIGHT" default:"480"`
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// NewConfig loads .env next to the config file, then the YAML file, then binds
// the environment. A missing YAML file leaves the defaults in place.
func NewConfig(path string) (*Config, error) {
	cfg := &Config{}

	if err := configparser.LoadDotEnv(filepath.Join(filepath.Dir(path), dotEnvFile)); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	if err := configparser.LoadYamlFile(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := configparser.ParseEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return ErrInvalidPort
	}
	c.Log.Level = strings.ToUpper(c.Log.Level)
	if !logger.ValidateLogLevel(c.Log.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.UI.SidebarWidth <= 0 || c.UI.ChartWidth <= 0 || c.UI.ChartHeight <= 0 {
		return ErrInvalidSize
	}
	return nil
}

// PrintConfig writes the effective configuration to stdout.
func PrintConfig(cfg *Config) {
	fmt.Fprintf(os.Stdout, "server:  %s (read %s, write %s)\n", cfg.Server.Addr(), cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	fmt.Fprintf(os.Stdout, "data:    hourly=%s daily=%s image=%s\n", cfg.Data.HourlyPath, cfg.Data.DailyPath, cfg.Data.ImagePath)
	fmt.Fprintf(os.Stdout, "ui:      locale=%s sidebar=%dpx chart=%dx%d\n", cfg.UI.Locale, cfg.UI.SidebarWidth, cfg.UI.ChartWidth, cfg.UI.ChartHeight)
	fmt.Fprintf(os.Stdout, "log:     %s\n", cfg.Log.Level)
}
