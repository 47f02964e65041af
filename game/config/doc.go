// Package config provides settings management for the Mars Rover Simulator.
//
// The config package handles:
//   - Built-in defaults for every setting
//   - An optional settings file (JSON, YAML or TOML, picked by extension)
//   - ROVER_* environment overrides, with .env support via LoadDotEnv
//   - Validation of the loaded values
//
// Settings:
//
//	logLevel              trace|debug|info|warn|error (default info)
//	logFormat             console|json (default console)
//	sentinel              line that ends console input (default "d")
//	trace                 record every executed command (default false)
//	plateau.multiDigit    read "10 12" as a 10x12 plateau (default false)
//	start.rejectNegative  reject starts below (0,0) (default false)
//
// Nested keys map to environment variables with dots replaced by
// underscores, e.g. ROVER_PLATEAU_MULTIDIGIT=true.
//
// Usage:
//
//	manager, err := config.NewManager("rover.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	settings := manager.Settings()
package config
