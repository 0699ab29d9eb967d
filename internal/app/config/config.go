// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はサーバー全体の設定です。
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"5000"`

	VnstockBaseURL string        `envconfig:"VNSTOCK_BASE_URL" default:"http://localhost:8000"`
	VnstockTimeout time.Duration `envconfig:"VNSTOCK_TIMEOUT" default:"10s"`

	// LogLevel は debug / info / warn / error を受け付けます。
	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`

	// Timezone は現在時刻とタイムスタンプのロケーションです。空ならプロセスのローカル時刻。
	Timezone string `envconfig:"TIMEZONE"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load は環境変数から設定を読み込み、検証します。
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if cfg.VnstockTimeout <= 0 {
		return Config{}, fmt.Errorf("load config: VNSTOCK_TIMEOUT must be positive, got %s", cfg.VnstockTimeout)
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Addr はlisten用の host:port を返します。
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location はTimezoneを解決します。空の場合はtime.Localです。
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
