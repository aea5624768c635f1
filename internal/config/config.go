package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type APIConfig struct {
	BaseURL    string `yaml:"base_url"`
	DebugMode  bool   `yaml:"debug_mode"`
	InstallURL string `yaml:"install_url"`
}

type CookiesConfig struct {
	MaxAge int `yaml:"max_age"` // секунды
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	API     APIConfig     `yaml:"api"`
	Cookies CookiesConfig `yaml:"cookies"`
}

func LoadConfig() *Config {
	f, err := os.Open("config/config.yaml")
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	if cfg.API.BaseURL == "" {
		panic("config: api.base_url is required")
	}
	if cfg.API.InstallURL == "" {
		cfg.API.InstallURL = "https://cabinet.example.com"
	}
	if cfg.Cookies.MaxAge == 0 {
		cfg.Cookies.MaxAge = 30 * 24 * 60 * 60 // месяц
	}
	return &cfg
}
