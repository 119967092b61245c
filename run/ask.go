package run

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xhd2015/less-gen/flags"

	"github.com/schulstick/portal/data"
	"github.com/schulstick/portal/internal/config"
)

const askHelp = `
ask <question>

Take a screenshot and ask the vision assistant a one-shot question
about it. Requires vision.base_url in the portal config and the API
key in the environment variable named by vision.api_key_env.

Options:
  --screenshot <file.png>      Use an existing screenshot instead of capturing
  -h,--help                    Show this help message
`

func handleAsk(args []string) error {
	var screenshotFile string

	args, err := flags.String("--screenshot", &screenshotFile).
		Help("-h,--help", askHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("ask requires a question")
	}
	question := strings.Join(args, " ")

	if config.IsDevelopment() {
		godotenv.Load()
	}

	portalConf, err := data.LoadPortalConfig()
	if err != nil {
		return err
	}

	client := newVisionClient(portalConf)

	var screenshot []byte
	if screenshotFile != "" {
		screenshot, err = os.ReadFile(screenshotFile)
		if err != nil {
			return err
		}
	}
	hint, err := askVision(client, question, screenshot)
	if err != nil {
		return err
	}

	ctx := context.Background()
	defer client.EndSession(ctx)

	fmt.Printf("Look at (%d, %d)\n", hint.LookAtCoordinates[0], hint.LookAtCoordinates[1])
	for i, instruction := range hint.Instructions {
		fmt.Printf("%d. %s\n", i+1, instruction)
	}
	return nil
}
