package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// LocalDirName is the per-project directory taskpanel looks for.
const LocalDirName = ".taskpanel"

// GetGlobalConfigDir returns the path to the global configuration directory (~/.taskpanel).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LocalDirName), nil
}

// GetBaseDir returns the directory for crash logs and the default log file.
// Resolution order (first match wins):
// 1. Explicit config via "base_dir" (Viper/env/flag)
// 2. Local project directory: ./.taskpanel (if exists)
// 3. XDG_STATE_HOME/taskpanel (if XDG_STATE_HOME is set)
// 4. Global fallback: ~/.taskpanel
func GetBaseDir() string {
	if path := viper.GetString("base_dir"); path != "" {
		return path
	}

	if info, err := os.Stat(LocalDirName); err == nil && info.IsDir() {
		return LocalDirName
	}

	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "taskpanel")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return LocalDirName
	}
	return dir
}
