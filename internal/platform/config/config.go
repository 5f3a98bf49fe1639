package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	SnapshotCumulative = "cumulative"
	SnapshotDelta      = "delta"

	envPrefix = "WATCHTRAINER_"
)

type Config struct {
	DataDir           string
	DBPath            string
	ActiveSessionPath string
	FeedPath          string
	JournalDir        string

	Location           *time.Location
	SnapshotMode       string
	DefaultWorkoutType string

	Log     LogConfig
	Weather WeatherConfig
	Coach   CoachConfig
	HTTP    HTTPConfig
}

type LogConfig struct {
	Level  string `yaml:"level"`
	File   string `yaml:"file"`
	JSON   bool   `yaml:"json"`
	Stdout bool   `yaml:"stdout"`
}

type WeatherConfig struct {
	APIKey       string        `yaml:"api_key"`
	BaseURL      string        `yaml:"base_url"`
	City         string        `yaml:"city"`
	PollInterval time.Duration `yaml:"poll_interval"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
}

type CoachConfig struct {
	Plugin  string        `yaml:"plugin"`
	Timeout time.Duration `yaml:"timeout"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type fileConfig struct {
	Timezone           string        `yaml:"timezone"`
	SnapshotMode       string        `yaml:"snapshot_mode"`
	DefaultWorkoutType string        `yaml:"default_workout_type"`
	FeedPath           string        `yaml:"feed_path"`
	Log                LogConfig     `yaml:"log"`
	Weather            WeatherConfig `yaml:"weather"`
	Coach              CoachConfig   `yaml:"coach"`
	HTTP               HTTPConfig    `yaml:"http"`
}

func defaults() fileConfig {
	return fileConfig{
		Timezone:           "Local",
		SnapshotMode:       SnapshotCumulative,
		DefaultWorkoutType: "walking",
		Log:                LogConfig{Level: "info"},
		Weather: WeatherConfig{
			BaseURL:      "https://api.openweathermap.org/data/2.5",
			City:         "Seoul",
			PollInterval: 30 * time.Minute,
			CacheTTL:     30 * time.Minute,
		},
		Coach: CoachConfig{Timeout: 3 * time.Second},
		HTTP:  HTTPConfig{Addr: "127.0.0.1:8080", AllowedOrigins: []string{"*"}},
	}
}

// New builds a configuration from defaults for dataDir without reading files.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return build(dataDir, defaults())
}

// Load reads <dataDir>/config.yaml (or configPath when set), then .env files,
// then WATCHTRAINER_* environment overrides.
func Load(dataDir, configPath string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	fc := defaults()

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(dataDir, "config.yaml")
	}
	raw, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	_ = godotenv.Load(filepath.Join(dataDir, ".env"))
	_ = godotenv.Load()
	applyEnv(&fc)

	return build(dataDir, fc)
}

func applyEnv(fc *fileConfig) {
	overrides := map[string]*string{
		"TIMEZONE":             &fc.Timezone,
		"SNAPSHOT_MODE":        &fc.SnapshotMode,
		"DEFAULT_WORKOUT_TYPE": &fc.DefaultWorkoutType,
		"FEED_PATH":            &fc.FeedPath,
		"LOG_LEVEL":            &fc.Log.Level,
		"LOG_FILE":             &fc.Log.File,
		"WEATHER_API_KEY":      &fc.Weather.APIKey,
		"WEATHER_BASE_URL":     &fc.Weather.BaseURL,
		"WEATHER_CITY":         &fc.Weather.City,
		"COACH_PLUGIN":         &fc.Coach.Plugin,
		"HTTP_ADDR":            &fc.HTTP.Addr,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*target = strings.TrimSpace(v)
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_JSON"); ok {
		fc.Log.JSON = v == "1" || strings.EqualFold(v, "true")
	}
}

func build(dataDir string, fc fileConfig) (Config, error) {
	loc, err := loadLocation(fc.Timezone)
	if err != nil {
		return Config{}, err
	}
	mode := strings.ToLower(strings.TrimSpace(fc.SnapshotMode))
	if mode != SnapshotCumulative && mode != SnapshotDelta {
		return Config{}, fmt.Errorf("snapshot_mode must be %q or %q, got %q", SnapshotCumulative, SnapshotDelta, fc.SnapshotMode)
	}
	if fc.Weather.PollInterval <= 0 {
		return Config{}, fmt.Errorf("weather.poll_interval must be positive")
	}

	stateDir := filepath.Join(dataDir, ".watchtrainer")
	feedPath := fc.FeedPath
	if feedPath == "" {
		feedPath = filepath.Join(stateDir, "feed.json")
	} else if !filepath.IsAbs(feedPath) {
		feedPath = filepath.Join(dataDir, feedPath)
	}
	logFile := fc.Log.File
	if logFile != "" && !filepath.IsAbs(logFile) {
		logFile = filepath.Join(dataDir, logFile)
	}
	fc.Log.File = logFile

	return Config{
		DataDir:            dataDir,
		DBPath:             filepath.Join(stateDir, "watchtrainer.db"),
		ActiveSessionPath:  filepath.Join(stateDir, "active-session.json"),
		FeedPath:           feedPath,
		JournalDir:         filepath.Join(dataDir, "journal"),
		Location:           loc,
		SnapshotMode:       mode,
		DefaultWorkoutType: fc.DefaultWorkoutType,
		Log:                fc.Log,
		Weather:            fc.Weather,
		Coach:              fc.Coach,
		HTTP:               fc.HTTP,
	}, nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
