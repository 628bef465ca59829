// Package config persists user settings at ~/.servectl/config.yaml and
// overlays SERVECTL_* environment variables via Viper.
package config
