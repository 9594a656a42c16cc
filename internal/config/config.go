package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API     *APIConfig     `mapstructure:"api"`
	Gateway *GatewayConfig `mapstructure:"gateway"`
	Gin     *GinConfig     `mapstructure:"gin"`
	Storage *StorageConfig `mapstructure:"storage"`
	Polling *PollingConfig `mapstructure:"polling"`
}

// APIConfig points at the remote USV Events REST API.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// GatewayConfig configures the local server the browser UI talks to.
type GatewayConfig struct {
	Environment        string `mapstructure:"environment"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// StorageConfig locates the durable client state (session file, form drafts).
type StorageConfig struct {
	Dir string `mapstructure:"dir"`
}

type PollingConfig struct {
	UnreadInterval time.Duration `mapstructure:"unread_interval"`
	SearchDebounce time.Duration `mapstructure:"search_debounce"`
}

func Load(configPath string) (*AppConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(configPath)

	vp.SetEnvPrefix("USV")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("vp.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := vp.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("vp.Unmarshal -> %w", err)
	}

	return conf, nil
}
