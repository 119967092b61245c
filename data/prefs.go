package data

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/schulstick/portal/internal/config"
	"github.com/schulstick/portal/models"
)

// LoadPreferences reads the user preferences YAML. A missing or empty
// file yields the defaults.
func LoadPreferences() (*models.Preferences, error) {
	prefsFile, err := config.GetPreferencesFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(prefsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultPreferences(), nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return models.DefaultPreferences(), nil
	}

	prefs := models.DefaultPreferences()
	if err := yaml.Unmarshal(data, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func SavePreferences(prefs *models.Preferences) error {
	prefsFile, err := config.GetPreferencesFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(prefsFile), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return err
	}
	return os.WriteFile(prefsFile, data, 0644)
}
