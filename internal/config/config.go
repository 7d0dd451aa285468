package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	WindowModeWindowed   = "windowed"
	WindowModeMaximized  = "maximized"
	WindowModeFullscreen = "fullscreen"
)

var ErrUnknownWindowMode = errors.New("unknown window mode")

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Window   Window `yaml:"window"`
	Home     Home   `yaml:"home"`
	Events   Events `yaml:"events"`
	Redis    Redis  `yaml:"redis"`
}

type Window struct {
	Title  string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic Tac Toe"`
	Width  int    `yaml:"width" env:"TICTACTOE_WINDOW_WIDTH" env-default:"800"`
	Height int    `yaml:"height" env:"TICTACTOE_WINDOW_HEIGHT" env-default:"800"`
	Mode   string `yaml:"mode" env:"TICTACTOE_WINDOW_MODE" env-default:"maximized"`
}

type Home struct {
	Subtitle string `yaml:"subtitle" env:"TICTACTOE_HOME_SUBTITLE" env-default:"Created by Jeel & Khushal"`
}

// Events configures the outbound game feed.
type Events struct {
	Enabled        bool          `yaml:"enabled" env:"TICTACTOE_EVENTS_ENABLED" env-default:"false"`
	Channel        string        `yaml:"channel" env:"TICTACTOE_EVENTS_CHANNEL" env-default:"tictactoe:events"`
	Buffer         int           `yaml:"buffer" env:"TICTACTOE_EVENTS_BUFFER" env-default:"64"`
	PublishTimeout time.Duration `yaml:"publish-timeout" env:"TICTACTOE_EVENTS_PUBLISH_TIMEOUT" env-default:"2s"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path. A missing file falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err = config.Window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid window config: %w", err)
	}

	return config, nil
}

func (that *Window) Validate() error {
	switch that.Mode {
	case WindowModeWindowed, WindowModeMaximized, WindowModeFullscreen:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownWindowMode, that.Mode)
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
