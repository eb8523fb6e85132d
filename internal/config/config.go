package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingCredential = errors.New("MiniMax API key is missing; set API_KEY in your environment")
	ErrMissingGroupID    = errors.New("MiniMax group id is missing; set GROUP_ID in your environment")
)

// Config is the resolved runtime configuration
type Config struct {
	APIKey  string
	GroupID string
	Model   string
	BaseURL string
	Timeout time.Duration

	OutputDir  string
	ReportName string

	PlayerType    string
	PlayerCommand string
	Pause         time.Duration

	LogLevel string
}

// SetDefaults registers defaults and env bindings on the global viper instance
func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "speech-02-hd")
	v.SetDefault("api.base_url", "https://api.minimaxi.chat")
	v.SetDefault("api.timeout", time.Duration(0)) // none: a hung request stalls the run
	v.SetDefault("output.dir", "voice_showcase")
	v.SetDefault("output.report", "showcase_report.json")
	v.SetDefault("playback.type", "exec")
	v.SetDefault("playback.command", "afplay")
	v.SetDefault("playback.pause", 2*time.Second)
	v.SetDefault("log.level", "warn")

	// first name wins
	_ = v.BindEnv("api_key", "API_KEY", "MINIMAX_API_KEY")
	_ = v.BindEnv("group_id", "GROUP_ID", "MINIMAX_GROUP_ID")
	_ = v.BindEnv("model", "MODEL", "MINIMAX_MODEL")
	_ = v.BindEnv("output.dir", "OUTPUT_DIR")
	_ = v.BindEnv("playback.command", "PLAYER_COMMAND")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

// LoadEnvFile loads .env files into the process environment. Missing files are ignored.
func LoadEnvFile(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			logrus.WithField("file", p).Debug("no env file loaded")
		}
	}
}

// Load reads the global viper state into a Config. It does not validate.
func Load() Config {
	return FromViper(viper.GetViper())
}

func FromViper(v *viper.Viper) Config {
	return Config{
		APIKey:        strings.TrimSpace(v.GetString("api_key")),
		GroupID:       strings.TrimSpace(v.GetString("group_id")),
		Model:         v.GetString("model"),
		BaseURL:       strings.TrimRight(v.GetString("api.base_url"), "/"),
		Timeout:       v.GetDuration("api.timeout"),
		OutputDir:     v.GetString("output.dir"),
		ReportName:    v.GetString("output.report"),
		PlayerType:    v.GetString("playback.type"),
		PlayerCommand: v.GetString("playback.command"),
		Pause:         v.GetDuration("playback.pause"),
		LogLevel:      v.GetString("log.level"),
	}
}

// Validate fails closed on a missing or placeholder credential.
func (c Config) Validate() error {
	if c.APIKey == "" || strings.Contains(c.APIKey, "...") {
		return ErrMissingCredential
	}
	if c.GroupID == "" {
		return ErrMissingGroupID
	}
	if c.Pause < 0 {
		return fmt.Errorf("playback pause must not be negative, got %s", c.Pause)
	}
	return nil
}

// ConfigureLogging applies the configured level to logrus
func ConfigureLogging(level string) {
	if level == "" {
		level = "warn"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).WithField("level", level).Warn("unknown log level, using warn")
		lvl = logrus.WarnLevel
	}
	logrus.SetLevel(lvl)
}
