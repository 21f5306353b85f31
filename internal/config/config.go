// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the bignum command-line tool.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/db47h/bignum"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding settings, as
// in BIGNUM_PRECISION or BIGNUM_STORE_PATH.
const EnvPrefix = "BIGNUM"

// Config holds the tool settings.
type Config struct {
	// Precision is the number of fractional digits of Real results.
	Precision uint `mapstructure:"precision"`
	// CacheSize is the number of evaluated expressions kept in memory. 0
	// disables the cache.
	CacheSize int `mapstructure:"cache_size"`
	// Workers is the number of expressions evaluated concurrently by batch
	// runs. 0 means runtime.NumCPU().
	Workers int         `mapstructure:"workers"`
	Verbose bool        `mapstructure:"verbose"`
	Store   StoreConfig `mapstructure:"store"`
}

// StoreConfig configures variable persistence.
type StoreConfig struct {
	// Path of the LevelDB database. Variables are kept in memory if empty.
	Path string `mapstructure:"path"`
}

// setDefaults sets all default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("precision", bignum.DefaultPrecision)
	v.SetDefault("cache_size", 256)
	v.SetDefault("workers", 0) // 0 means auto-detect
	v.SetDefault("verbose", false)
	v.SetDefault("store.path", "") // in-memory
}

// New returns a viper instance with defaults and environment variable
// support. Callers may bind command-line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration file at path, if not empty, into v and
// returns the validated configuration. Sources in increasing priority are:
// defaults, configuration file, environment variables and bound flags.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// Default returns the default configuration.
func Default() *Config {
	c, err := Load(New(), "")
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the configuration for out of range values.
func (c *Config) Validate() error {
	if c.Precision > bignum.MaxPrec {
		return fmt.Errorf("precision %d exceeds the maximum of %d", c.Precision, uint(bignum.MaxPrec))
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", c.CacheSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	return nil
}

// WorkerCount returns the number of batch workers to run.
func (c *Config) WorkerCount() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
