package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory holding gallery files
const AppDirName = "sample-gallery"

// ConfigFileNames are probed in order inside the user config directory
var ConfigFileNames = []string{"config.yaml", "config.yml", "config.json", "config.toml"}

// DefaultConfigFile returns the first existing config file in the user
// config directory, or "" when there is none
func DefaultConfigFile() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return FindConfigFile(filepath.Join(base, AppDirName)), nil
}

// FindConfigFile returns the first ConfigFileNames entry present in dir
func FindConfigFile(dir string) string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
