// Package config defines the application's configuration structure and
// handles loading settings from environment variables and config files.
package config
