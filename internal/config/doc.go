// Package config provides configuration loading and validation for the bintree CLI.
//
// # Overview
//
// The config package loads CLI settings from YAML or JSON files and the
// environment. It supports:
//
//   - YAML (.yaml, .yml) and JSON (.json) files, chosen by extension
//   - ${VAR} and ${VAR:-default} substitution inside the file
//   - BINTREE_* environment variable overrides
//   - Default values for all settings
//   - Validation, including decoding the configured tree
//
// # Configuration File
//
//	tree: "1,2,null,null,3,null,null"
//	logging:
//	  level: info
//	  format: text
//	  output: stderr
//	render:
//	  horizontal: false
//	  nullMarker: "·"
//
// # Loading Configuration
//
//	cfg, err := config.LoadConfig("bintree.yaml")
//	if err != nil {
//	    return err
//	}
//	config.ApplyEnvOverrides(cfg)
//
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    // report errs
//	}
//
// # Environment Variables
//
//	BINTREE_TREE=1,null,null
//	BINTREE_LOGGING_LEVEL=debug
//	BINTREE_LOGGING_FORMAT=json
//	BINTREE_LOGGING_OUTPUT=/tmp/bintree.log
//	BINTREE_RENDER_NULL_MARKER=-
package config
