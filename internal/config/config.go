// Package config handles application configuration and setup
package config

import (
	"github.com/pkg/profile"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// StartCPUProfile starts writing a CPU profile into the given directory. The returned
// value has to be stopped to flush the profile.
func StartCPUProfile(dir string) interface{ Stop() } {
	return profile.Start(profile.NoShutdownHook, profile.Quiet, profile.ProfilePath(dir), profile.CPUProfile)
}
