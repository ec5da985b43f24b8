// Package config defines the application's configuration structure and
// loads it from config files and environment variables.
package config
