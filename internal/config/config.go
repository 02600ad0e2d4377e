// Package config holds the engine's tunable settings: defaults baked in at
// init time, optionally overridden by a TOML file read once at startup.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the config file to load, relative to the
	// working directory.
	ConfFile = "./config.toml"

	// LogLevel is the standard logger's verbosity (op/go-logging levels,
	// 0=CRITICAL .. 5=DEBUG).
	LogLevel = 4

	// Settings is the global configuration, populated by init() defaults and
	// then Setup().
	Settings Conf

	initialized = false
)

// Conf groups every configurable subsystem.
type Conf struct {
	Log    LogConfig
	Search SearchConfig
}

// Setup reads ConfFile if present, overlaying it on the package's defaults.
// A missing or malformed file is not an error - the engine runs on its
// built-in defaults either way. Calling Setup more than once is a no-op.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config: no config file loaded, using defaults (", err, ")")
	}
	initialized = true
}
