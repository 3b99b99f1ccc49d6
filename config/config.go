package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bnema/vidqa/internal/domain"
)

const (
	StoreMemory = "memory"
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Port            int    `yaml:"port"`
	DataDir         string `yaml:"data_dir"`
	MaxUploadSizeMB int    `yaml:"max_upload_size_mb"`
	BehindProxy     bool   `yaml:"behind_proxy"`
	APITokenHash    string `yaml:"api_token_hash"`
	LogJSON         bool   `yaml:"log_json"`

	FrameIntervalSeconds float64  `yaml:"frame_interval_seconds"`
	ScoreWorkers         int      `yaml:"score_workers"`
	FrameMaxWidth        uint     `yaml:"frame_max_width"`
	ReportFormats        []string `yaml:"report_formats"`

	Store          string        `yaml:"store"`
	RedisAddr      string        `yaml:"redis_addr"`
	RedisPassword  string        `yaml:"redis_password"`
	RedisDB        int           `yaml:"redis_db"`
	RedisResultTTL time.Duration `yaml:"redis_result_ttl"`

	InferenceURL    string        `yaml:"inference_url"`
	WhisperURL      string        `yaml:"whisper_url"`
	WhisperAPIKey   string        `yaml:"whisper_api_key"`
	WhisperModel    string        `yaml:"whisper_model"`
	WhisperLanguage string        `yaml:"whisper_language"`
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	YtDlpPath   string `yaml:"ytdlp_path"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
	CookiesFile string `yaml:"cookies_file"`
}

func Default() *Config {
	return &Config{
		Port:                 7890,
		DataDir:              "./data",
		MaxUploadSizeMB:      500,
		FrameIntervalSeconds: 5,
		ScoreWorkers:         4,
		FrameMaxWidth:        1280,
		ReportFormats:        []string{"json", "pdf", "xlsx"},
		Store:                StoreSQLite,
		RedisAddr:            "localhost:6379",
		RedisResultTTL:       7 * 24 * time.Hour,
		WhisperModel:         "whisper-1",
		ProviderTimeout:      30 * time.Second,
		YtDlpPath:            "yt-dlp",
		FFmpegPath:           "ffmpeg",
		FFprobePath:          "ffprobe",
	}
}

// Load applies, in order: defaults, the YAML file at path (skipped when
// path is empty and no config.yaml exists), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	for _, candidate := range []string{"./config.yaml", "./config.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func (c *Config) applyEnv() error {
	setString(&c.DataDir, "DATA_DIR")
	setString(&c.APITokenHash, "API_TOKEN_HASH")
	setString(&c.Store, "STORE")
	setString(&c.RedisAddr, "REDIS_ADDR")
	setString(&c.RedisPassword, "REDIS_PASSWORD")
	setString(&c.InferenceURL, "INFERENCE_URL")
	setString(&c.WhisperURL, "WHISPER_URL")
	setString(&c.WhisperAPIKey, "WHISPER_API_KEY")
	setString(&c.WhisperModel, "WHISPER_MODEL")
	setString(&c.WhisperLanguage, "WHISPER_LANGUAGE")
	setString(&c.YtDlpPath, "YTDLP_PATH")
	setString(&c.FFmpegPath, "FFMPEG_PATH")
	setString(&c.FFprobePath, "FFPROBE_PATH")
	setString(&c.CookiesFile, "COOKIES_FILE")

	if v := os.Getenv("REPORT_FORMATS"); v != "" {
		c.ReportFormats = splitList(v)
	}

	parsers := []struct {
		key   string
		parse func(string) error
	}{
		{"PORT", intInto(&c.Port)},
		{"MAX_UPLOAD_SIZE_MB", intInto(&c.MaxUploadSizeMB)},
		{"SCORE_WORKERS", intInto(&c.ScoreWorkers)},
		{"REDIS_DB", intInto(&c.RedisDB)},
		{"FRAME_MAX_WIDTH", uintInto(&c.FrameMaxWidth)},
		{"FRAME_INTERVAL_SECONDS", floatInto(&c.FrameIntervalSeconds)},
		{"PROVIDER_TIMEOUT", durationInto(&c.ProviderTimeout)},
		{"REDIS_RESULT_TTL", durationInto(&c.RedisResultTTL)},
		{"BEHIND_PROXY", boolInto(&c.BehindProxy)},
		{"LOG_JSON", boolInto(&c.LogJSON)},
	}
	for _, p := range parsers {
		v := os.Getenv(p.key)
		if v == "" {
			continue
		}
		if err := p.parse(v); err != nil {
			return fmt.Errorf("invalid %s: %w", p.key, err)
		}
	}
	return nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	if c.FrameIntervalSeconds <= 0 {
		return fmt.Errorf("frame interval must be positive")
	}
	if c.ScoreWorkers <= 0 {
		return fmt.Errorf("score workers must be positive")
	}
	switch c.Store {
	case StoreMemory, StoreJSON, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown store %q (want memory, json, sqlite or redis)", c.Store)
	}
	if _, err := c.Formats(); err != nil {
		return err
	}
	return nil
}

// Formats parses ReportFormats, dropping duplicates.
func (c *Config) Formats() ([]domain.ReportFormat, error) {
	seen := make(map[domain.ReportFormat]bool, len(c.ReportFormats))
	formats := make([]domain.ReportFormat, 0, len(c.ReportFormats))
	for _, name := range c.ReportFormats {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := domain.ParseReportFormat(name)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) * 1024 * 1024
}

// StatePath is where file-backed stores keep their data.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "state")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intInto(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func uintInto(dst *uint) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return err
		}
		*dst = uint(n)
		return nil
	}
}

func floatInto(dst *float64) func(string) error {
	return func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}
}

func durationInto(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}
}

func boolInto(dst *bool) func(string) error {
	return func(v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}
