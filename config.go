package main

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/andareed/wrwatch/records"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	keyBaseURL         = "base_url"
	keyDefaultCategory = "default_category"
	keyTimeout         = "timeout"
	keySource          = "source"
	keyExportDir       = "export_dir"
)

type Config struct {
	BaseURL         string
	DefaultCategory records.Key
	Timeout         time.Duration // 0 waits forever
	Source          string        // written into export headers
	ExportDir       string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyBaseURL, "http://localhost:5000")
	v.SetDefault(keyDefaultCategory, string(records.DefaultKey))
	v.SetDefault(keyTimeout, time.Duration(0))
	v.SetDefault(keySource, "https://www.speedrun.com/outlast")
	v.SetDefault(keyExportDir, "")
	v.SetEnvPrefix("wrwatch")
	v.AutomaticEnv()
	return v
}

// readConfigFile loads cfgFile, or $HOME/.wrwatch.yaml when cfgFile is empty.
// A missing default file is not an error.
func readConfigFile(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("locate home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(".wrwatch")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		BaseURL:         v.GetString(keyBaseURL),
		DefaultCategory: records.Key(v.GetString(keyDefaultCategory)),
		Timeout:         v.GetDuration(keyTimeout),
		Source:          v.GetString(keySource),
		ExportDir:       v.GetString(keyExportDir),
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Config{}, fmt.Errorf("invalid %s %q: want http(s)://host[:port]", keyBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("invalid %s %s: must not be negative", keyTimeout, cfg.Timeout)
	}
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = records.DefaultKey
	}
	return cfg, nil
}
