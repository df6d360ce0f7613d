// Package config provides user configuration management for idev.
//
// This package manages a YAML-based configuration file that stores
// application preferences: the default output format, extra environment
// variables to forward to ios-deploy, and the log level. The configuration
// follows OS-specific conventions for storage location.
//
// # File Location
//
//   - Linux: $XDG_CONFIG_HOME/idev/config.yaml or ~/.config/idev/config.yaml
//   - macOS: ~/.config/idev/config.yaml
//   - Windows: %LOCALAPPDATA%\idev\config.yaml
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	e := env.NewWithExtras(cfg.ExtraEnv)
//
// A missing file is not an error; defaults apply. An unparseable or
// structurally invalid file is an error, never silently ignored.
package config
