package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/servekit/servectl/internal/branding"
	"github.com/servekit/servectl/internal/installer"
	"github.com/servekit/servectl/internal/toolchain"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known keys.
const (
	KeyProgram = "program"
	KeyCargo   = "cargo.bin"
	KeyBinDir  = "install.bin_dir"
)

// Dir returns the path to the config directory (~/.servectl/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.servectl/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Env vars use the SERVECTL_ prefix with dots mapped to underscores,
// e.g. SERVECTL_INSTALL_BIN_DIR overrides install.bin_dir.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyProgram, branding.ProgramName())
	viper.SetDefault(KeyCargo, toolchain.DefaultBin)
	viper.SetDefault(KeyBinDir, installer.DefaultBinDir)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Default returns the built-in default for a well-known key, or empty string
// for unknown keys.
func Default(key string) string {
	switch key {
	case KeyProgram:
		return branding.ProgramName()
	case KeyCargo:
		return toolchain.DefaultBin
	case KeyBinDir:
		return installer.DefaultBinDir
	}
	return ""
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
