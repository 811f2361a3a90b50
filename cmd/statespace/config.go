package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigFile is picked up from the working directory when the user
// does not pass --config.
const defaultConfigFile = "statespace.yaml"

// Config mirrors the persistent flags so that standing preferences can
// live in a YAML file. Flags set on the command line win over the file.
type Config struct {
	Order         string `yaml:"order"`
	Events        bool   `yaml:"events"`
	Store         string `yaml:"store"`
	MySQLDSN      string `yaml:"mysql_dsn"`
	MetricsListen string `yaml:"metrics_listen"`
	Trace         bool   `yaml:"trace"`
	MaxStates     int    `yaml:"max_states"`
	NoColor       bool   `yaml:"no_color"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfigFile loads the config file, if any, before a command runs.
// An explicit --config that cannot be read is an error; the default file
// is optional.
func applyConfigFile() error {
	path := flagConfig
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return nil
		}
		path = defaultConfigFile
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	applyConfig(cfg)
	return nil
}

// applyConfig copies file values into the flag variables, but never over
// a flag the user set explicitly.
func applyConfig(cfg Config) {
	pf := rootCmd.PersistentFlags()
	if !pf.Changed("order") && cfg.Order != "" {
		flagOrder = cfg.Order
	}
	if !pf.Changed("events") && cfg.Events {
		flagEvents = true
	}
	if !pf.Changed("store") && cfg.Store != "" {
		flagStore = cfg.Store
	}
	if !pf.Changed("mysql-dsn") && cfg.MySQLDSN != "" {
		flagMySQLDSN = cfg.MySQLDSN
	}
	if !pf.Changed("metrics-listen") && cfg.MetricsListen != "" {
		flagMetricsListen = cfg.MetricsListen
	}
	if !pf.Changed("trace") && cfg.Trace {
		flagTrace = true
	}
	if !pf.Changed("max-states") && cfg.MaxStates != 0 {
		flagMaxStates = cfg.MaxStates
	}
	if !pf.Changed("no-color") && cfg.NoColor {
		flagNoColor = true
	}
}
