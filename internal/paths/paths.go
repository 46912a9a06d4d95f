package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "vane"

// AppDataDir returns the application data directory for the database and log.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the key=value configuration file.
// VANE_CONFIG overrides the default of ~/.vanerc.
func ConfigFilePath() (string, error) {
	if p := os.Getenv("VANE_CONFIG"); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".vanerc"), nil
}

// DBFilePath returns the default path of the SQLite database.
func DBFilePath() string {
	return filepath.Join(AppDataDir(), "vane.db")
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/vane/vane.log
//   - Linux: $XDG_CONFIG_HOME/vane/vane.log or ~/.config/vane/vane.log
//   - Windows: %AppData%\vane\vane.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "vane.log")
}
