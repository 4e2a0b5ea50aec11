// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the core configuration package
//              providing TOML and YAML configuration loading with
//              environment variable overrides.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package config provides configuration management for the netrc tools.
//
// The package loads configuration from TOML or YAML files, detects the
// format from the file extension, and lets environment variables with a
// configurable prefix override any file value. Keys use dot notation for
// nested access:
//
//	cfg, err := config.Load("config.toml")
//	if err != nil {
//		return err
//	}
//	level := cfg.GetString("log.level", "info")
//
// With an environment prefix of "NETRC", the key "log.level" can be
// overridden by the variable NETRC_LOG_LEVEL.
//
// Discover searches a list of directories for well-known configuration
// filenames, so callers do not have to hard-code a path:
//
//	cfg, err := config.Discover(config.DiscoveryOptions{
//		EnvPrefix: "NETRC",
//		Required:  false,
//	})
package config
