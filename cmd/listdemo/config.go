package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"

	"simplelist/log"
)

const (
	defaultCount    = 3
	defaultLogLevel = log.InfoLevel
)

type Config struct {
	// Count is how many integers, 1 through Count, are pushed.
	Count    int
	LogLevel string
	// Metrics prints the gathered list metrics after the run.
	Metrics bool
}

func NewConfig() *Config {
	return &Config{Count: defaultCount, LogLevel: defaultLogLevel}
}

// BindFlags registers the config fields on fs using the current values as
// defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Count, "count", "n", c.Count, "number of integers to push")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.Metrics, "metrics", c.Metrics, "print list metrics after the run")
}

func (c *Config) Validate() error {
	if c.Count < 0 {
		return errors.Newf("count must not be negative, got %d", c.Count)
	}
	return nil
}
