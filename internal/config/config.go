package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// UpstreamConfig points at the external CareerConnect API. The gateway
// owns no persistence of its own; everything behind this URL does.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CredentialsConfig selects the credential store backend. "file" keeps
// the session local to this machine; "redis" shares one credential slot
// between gateway processes.
type CredentialsConfig struct {
	Backend   string
	Path      string
	Namespace string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig tunes the optional credential watcher. A zero
// WatchInterval disables it and accepts the cross-process
// inconsistency window.
type SessionConfig struct {
	WatchInterval time.Duration
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Upstream         UpstreamConfig
	Credentials      CredentialsConfig
	Redis            RedisConfig
	Session          SessionConfig
	AllowCORSOrigins []string
}

func Load() (*AppConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")

	v.SetEnvPrefix("CAREERCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Credentials.Backend != "file" && cfg.Credentials.Backend != "redis" {
		return nil, fmt.Errorf("credentials backend %q: want file or redis", cfg.Credentials.Backend)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 8090)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "30s")
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("upstream.baseurl", "http://127.0.0.1:8081/api")
	v.SetDefault("upstream.timeout", "30s")

	v.SetDefault("credentials.backend", "file")
	v.SetDefault("credentials.namespace", "careerconnect")

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)

	// Watcher off by default; see SessionConfig.
	v.SetDefault("session.watchinterval", "0s")
}
