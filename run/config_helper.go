package run

import "github.com/schulstick/portal/data"

const DEFAULT_STORAGE = "sqlite"

// StorageConfig holds storage-related configuration values
type StorageConfig struct {
	StorageType string
	ServerAddr  string
	ServerToken string
}

// ApplyConfigDefaults loads saved config and applies defaults to storage settings
func ApplyConfigDefaults(storageType, serverAddr, serverToken string) (StorageConfig, error) {
	savedConfig, err := data.LoadConfig()
	if err != nil {
		return StorageConfig{}, err
	}

	if storageType == "" && savedConfig != nil && savedConfig.StorageType != "" {
		storageType = savedConfig.StorageType
	}
	if serverAddr == "" && savedConfig != nil && savedConfig.ServerAddr != "" {
		serverAddr = savedConfig.ServerAddr
	}
	if serverToken == "" && savedConfig != nil && savedConfig.ServerToken != "" {
		serverToken = savedConfig.ServerToken
	}

	if storageType == "" {
		storageType = DEFAULT_STORAGE
	}

	return StorageConfig{
		StorageType: storageType,
		ServerAddr:  serverAddr,
		ServerToken: serverToken,
	}, nil
}
