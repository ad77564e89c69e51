package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig mirrors the optional config file at
// $XDG_CONFIG_HOME/pa/config.toml. All fields are optional; the zero
// value means "use the default". Environment variables take precedence
// over the file.
type FileConfig struct {
	StoreDir        string `toml:"store_dir"`
	PasswordLength  int    `toml:"password_length"`
	PasswordPattern string `toml:"password_pattern"`
	DisableGit      bool   `toml:"disable_git"`
}

// FileConfigPath returns the path of the config file, or an empty string
// if the user config directory cannot be determined.
func FileConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "pa", "config.toml")
}

// LoadFileConfig loads the config file. A missing file is not an error
// and yields the zero FileConfig.
func LoadFileConfig() (*FileConfig, error) {
	config := &FileConfig{}

	configPath := FileConfigPath()
	if configPath == "" {
		return config, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveFileConfig writes the config file, creating its directory if needed.
func SaveFileConfig(config *FileConfig) error {
	configPath := FileConfigPath()
	if configPath == "" {
		return fmt.Errorf("cannot determine user config directory")
	}

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}
