package data

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/schulstick/portal/internal/config"
	"github.com/schulstick/portal/models"
)

// LoadConfig reads the persisted application state. A missing or empty
// file yields nil, not an error.
func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetStateJSONFile()
	if err != nil {
		return nil, err
	}

	configData, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(configData) == 0 {
		return nil, nil
	}

	var conf models.Config
	err = json.Unmarshal(configData, &conf)
	if err != nil {
		return nil, err
	}

	return &conf, nil
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetStateJSONFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}

	data, err := json.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0644)
}

// LoadPortalConfig reads the YAML portal configuration. A missing file
// yields the defaults.
func LoadPortalConfig() (*models.PortalConfig, error) {
	configFile, err := config.GetPortalConfigFile()
	if err != nil {
		return nil, err
	}
	return LoadPortalConfigFile(configFile)
}

func LoadPortalConfigFile(configFile string) (*models.PortalConfig, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultPortalConfig(), nil
		}
		return nil, err
	}

	conf := models.DefaultPortalConfig()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

func SavePortalConfig(conf *models.PortalConfig) error {
	configFile, err := config.GetPortalConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(conf)
	if err != nil {
		return err
	}
	return os.WriteFile(configFile, data, 0644)
}
