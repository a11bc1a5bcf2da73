// Package config aggregates command-line client settings from
// environment variables and an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds defaults for the command-line client. Every field can
// be overridden by a command-line flag.
type Settings struct {
	Endpoint       string `mapstructure:"endpoint"`
	Region         string `mapstructure:"region"`
	Profile        string `mapstructure:"profile"`
	ChecksumPolicy string `mapstructure:"checksum_policy"`
	ReadTimeout    int    `mapstructure:"read_timeout"`
	MaxRetries     int    `mapstructure:"max_retries"`
}

// Load reads settings from S3CLIENT_* environment variables and an
// optional s3client.yaml file in the working directory or
// ~/.config/s3client.
func Load() (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("S3CLIENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults also register the keys so AutomaticEnv picks them up
	// during Unmarshal
	v.SetDefault("endpoint", "")
	v.SetDefault("region", "")
	v.SetDefault("profile", "")
	v.SetDefault("checksum_policy", "")
	v.SetDefault("read_timeout", 300)
	v.SetDefault("max_retries", 3)

	v.SetConfigName("s3client")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/s3client")
	_ = v.ReadInConfig() // optional file

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return settings, nil
}
