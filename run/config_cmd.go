package run

import (
	"fmt"

	"github.com/schulstick/portal/data"
	"github.com/schulstick/portal/internal/config"
)

const configHelp = `
config - show or initialize the portal configuration

Usage: portal config          print the config file paths
       portal config init     write a default portal config file
`

func handleConfig(args []string) error {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Println(configHelp)
		return nil
	}

	if len(args) > 0 && args[0] == "init" {
		conf, err := data.LoadPortalConfig()
		if err != nil {
			return err
		}
		if err := data.SavePortalConfig(conf); err != nil {
			return err
		}
		configFile, err := config.GetPortalConfigFile()
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configFile)
		return nil
	}

	configFile, err := config.GetPortalConfigFile()
	if err != nil {
		return err
	}
	prefsFile, err := config.GetPreferencesFile()
	if err != nil {
		return err
	}
	stateFile, err := config.GetStateJSONFile()
	if err != nil {
		return err
	}

	fmt.Println(configFile)
	fmt.Println(prefsFile)
	fmt.Println(stateFile)
	return nil
}
