package config

import (
	"os"
	"path/filepath"
)

// DevConfigDir is used instead of the user config dir when
// SCHULSTICK_ENV=development.
const DevConfigDir = "dev_config"

func IsDevelopment() bool {
	return os.Getenv("SCHULSTICK_ENV") == "development"
}

func GetConfigDir() (string, error) {
	if IsDevelopment() {
		return DevConfigDir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "schulstick"), nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetPortalConfigFile() (string, error) {
	return GetConfigFile("schulstick-portal-config.yml")
}

func GetPreferencesFile() (string, error) {
	return GetConfigFile("preferences.yml")
}

func GetStateJSONFile() (string, error) {
	return GetConfigFile("state.json")
}

func GetProgressJSONFile() (string, error) {
	return GetConfigFile("progress.json")
}

func GetSqliteFile() (string, error) {
	return GetConfigFile("progress.db")
}
