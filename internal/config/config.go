package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string        `mapstructure:"env"`
	HTTPPort     string        `mapstructure:"http_port"`
	RateRPS      float64       `mapstructure:"http_rate_rps"`
	RateBurst    int           `mapstructure:"http_rate_burst"`
	MaxWallets   int           `mapstructure:"max_wallets"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	Worker       WorkerConfig  `mapstructure:"worker"`
	Airdrop      AirdropConfig `mapstructure:"airdrop"`
	Auth         AuthConfig    `mapstructure:"auth"`
	Log          LogConfig     `mapstructure:"log"`
}

type WorkerConfig struct {
	// Concurrency <= 0 issues every lookup at once.
	Concurrency int `mapstructure:"concurrency"`
}

// AirdropConfig describes the upstream airdrop balance API.
type AirdropConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	QueryParam string `mapstructure:"query_param"`
	// Timeout bounds each lookup on its own (default 10s). A timed-out lookup
	// is dropped from the batch like any other failed lookup.
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetries    int           `mapstructure:"max_retries"`
	RatePerSecond float64       `mapstructure:"rate_per_second"`
	StrictCode    bool          `mapstructure:"strict_code"`
	SuccessCode   int           `mapstructure:"success_code"`
	UserAgent     string        `mapstructure:"user_agent"`
}

type AuthConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	TTL    time.Duration `mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

var defaults = map[string]any{
	"env":                     "dev",
	"http_port":               "8080",
	"http_rate_rps":           100,
	"http_rate_burst":         100,
	"max_wallets":             0,
	"max_body_bytes":          1 << 20,
	"worker.concurrency":      16,
	"airdrop.base_url":        "https://api.commonwealth4.com/airdrop_balance",
	"airdrop.query_param":     "user",
	"airdrop.timeout":         "10s",
	"airdrop.max_retries":     0,
	"airdrop.rate_per_second": 0,
	"airdrop.strict_code":     false,
	"airdrop.success_code":    0,
	"airdrop.user_agent":      "airdrop-scanner/1.0",
	"auth.secret":             "",
	"auth.issuer":             "airdrop-scanner",
	"auth.ttl":                "24h",
	"log.level":               "info",
	"log.file":                "",
}

// aliases binds keys whose env name does not follow the key path.
var aliases = map[string]string{
	"env": "APP_ENV",
}

// Load reads .env (if present), the optional CONFIG_FILE and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	v := newViper()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, def := range defaults {
		v.SetDefault(k, def)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, env := range aliases {
		_ = v.BindEnv(k, env)
	}
	return v
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Airdrop.QueryParam == "" {
		cfg.Airdrop.QueryParam = "user"
	}
	return cfg, nil
}

// Watch re-reads CONFIG_FILE on change and hands the new config to onChange.
// It is a no-op when no config file is in use.
func Watch(onChange func(Config)) {
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		return
	}
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(fsnotify.Event) {
		cfg, err := decode(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
}
