// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings is the merged configuration: defaults, then the config file, then
// NX584_* environment variables, then command line flags.
type Settings struct {
	Serial    SerialSettings    `mapstructure:"serial"`
	WebSocket WebSocketSettings `mapstructure:"websocket"`
	Link      LinkSettings      `mapstructure:"link"`
	Log       LogSettings       `mapstructure:"log"`
	Metrics   MetricsSettings   `mapstructure:"metrics"`
}

type SerialSettings struct {
	Port string `mapstructure:"port"`
	Baud int    `mapstructure:"baud"`
}

type WebSocketSettings struct {
	URL         string `mapstructure:"url"`
	Username    string `mapstructure:"username"`
	NoSSLVerify bool   `mapstructure:"no_ssl_verify"`
}

// LinkSettings configures the panel interface link.
type LinkSettings struct {
	Protocol          string        `mapstructure:"protocol"`
	ReplyTimeout      time.Duration `mapstructure:"reply_timeout"`
	HoldPartialFrames bool          `mapstructure:"hold_partial_frames"`
}

type LogSettings struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type MetricsSettings struct {
	Addr string `mapstructure:"addr"`
}

// flagKeys maps persistent flags onto settings keys.
var flagKeys = map[string]string{
	"port":                "serial.port",
	"baud":                "serial.baud",
	"url":                 "websocket.url",
	"username":            "websocket.username",
	"no-ssl-verify":       "websocket.no_ssl_verify",
	"protocol":            "link.protocol",
	"reply-timeout":       "link.reply_timeout",
	"hold-partial-frames": "link.hold_partial_frames",
	"log-level":           "log.level",
	"log-file":            "log.file",
	"metrics-addr":        "metrics.addr",
}

// loadSettings reads the configuration. A missing default config file is not
// an error; a missing explicit one is.
func loadSettings(path string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "nx584"))
		}
		v.SetConfigName("nx584")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix("NX584")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("serial.port", "")
	v.SetDefault("serial.baud", 38400)

	v.SetDefault("websocket.url", "")
	v.SetDefault("websocket.username", "")
	v.SetDefault("websocket.no_ssl_verify", false)

	v.SetDefault("link.protocol", "binary")
	v.SetDefault("link.reply_timeout", "3s")
	v.SetDefault("link.hold_partial_frames", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("metrics.addr", "")
}
