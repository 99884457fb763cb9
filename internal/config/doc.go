// Package config provides configuration management for vidscribe.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, optionally read from a .env file
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Backend at http://127.0.0.1:8000
//	// Chinese messages, "options" download variant
//
// # Loading from File and Environment
//
//	config.LoadDotEnv()
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	settings.ApplyEnv()
//
// # Environment Variables
//
//   - VIDSCRIBE_BASE_URL: backend base URL
//   - VIDSCRIBE_LANG: message language (zh, en)
//   - VIDSCRIBE_DOWNLOAD_VARIANT: options or legacy
//   - VIDSCRIBE_REQUEST_TIMEOUT: seconds, 0 for none
package config
