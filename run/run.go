package run

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/xhd2015/go-dom-tui/charm"
	"github.com/xhd2015/less-gen/flags"

	"github.com/schulstick/portal/app"
	"github.com/schulstick/portal/data"
	"github.com/schulstick/portal/internal/config"
	"github.com/schulstick/portal/internal/launcher"
	"github.com/schulstick/portal/internal/process"
	"github.com/schulstick/portal/log"
	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/vision"
)

const help = `
portal - the Schulstick learning portal

Usage: portal [OPTIONS]
       portal <cmd> [OPTIONS]

Available sub commands:
  list
  export <file.json>
  import <file.json>
  config
  ask <question>

Options:
  --unit-root <dir>                lesson directory (default from portal config)
  --storage <type>                 storage backend: sqlite (default), file, or server
  --server-addr <addr>             server address (required when --storage=server)
  --server-token <token>           server authentication token (optional when --storage=server)
  --no-watch                       do not watch the lesson directory for changes
  --no-wizard                      skip the welcome wizard
  --debug-log                      write debug lines to portal-info.log
  --show-path                      print the config directory and exit
  -h,--help                        show this help message

Examples:
  portal                           run the portal
  portal --unit-root ./markdown    use a local lesson directory
  portal --storage=file            keep progress in a JSON file
  portal list                      print the lesson catalog
  portal ask "where is the save button?"  one-shot screen question
`

func Main(args []string) error {
	if len(args) > 0 {
		arg0 := args[0]
		switch arg0 {
		case "list":
			return handleList(args[1:])
		case "export":
			return handleExport(args[1:])
		case "import":
			return handleImport(args[1:])
		case "config":
			return handleConfig(args[1:])
		case "ask":
			return handleAsk(args[1:])
		}
	}

	var unitRoot string
	var storageType string
	var serverAddr string
	var serverToken string
	var noWatch bool
	var noWizard bool
	var debugLog bool
	var showPath bool

	args, err := flags.String("--unit-root", &unitRoot).
		String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--no-watch", &noWatch).
		Bool("--no-wizard", &noWizard).
		Bool("--debug-log", &debugLog).
		Bool("--show-path", &showPath).
		Help("-h,--help", help).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra arguments: %s", strings.Join(args, " "))
	}

	confDir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	if showPath {
		fmt.Println(confDir)
		return nil
	}
	err = os.MkdirAll(confDir, 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	if config.IsDevelopment() {
		// dev secrets like VISION_API_KEY live in .env
		godotenv.Load()
	}

	if err := log.Init(confDir); err != nil {
		return err
	}
	if debugLog {
		log.EnableDebug()
	}

	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	storageType = storageConfig.StorageType
	serverAddr = storageConfig.ServerAddr
	serverToken = storageConfig.ServerToken

	if storageType == "server" && serverAddr == "" {
		return fmt.Errorf("--server-addr is required when --storage=server")
	}

	portalConf, err := data.LoadPortalConfig()
	if err != nil {
		return err
	}
	if unitRoot == "" {
		unitRoot = portalConf.UnitRootPath
	}

	prefs, err := data.LoadPreferences()
	if err != nil {
		return err
	}

	progressService, err := createProgressService(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}

	// single instance
	stateConf, err := data.LoadConfig()
	if err != nil {
		return err
	}
	if stateConf != nil && stateConf.RunningPID > 0 {
		exists, _ := process.ProcessExists(stateConf.RunningPID)
		if exists {
			return fmt.Errorf("portal is already running with PID %d", stateConf.RunningPID)
		}
	}
	if stateConf == nil {
		stateConf = &models.Config{}
	}
	stateConf.RunningPID = os.Getpid()
	stateConf.StorageType = storageType
	err = data.SaveConfig(stateConf)
	if err != nil {
		return err
	}

	manager := data.NewCatalogManager(unitRoot, progressService)
	err = manager.Init()
	if err != nil {
		return err
	}
	for _, warning := range manager.Warnings() {
		log.Warnf(context.Background(), "catalog: %s", warning.String())
	}

	visionClient := newVisionClient(portalConf)

	var p *tea.Program
	appState := app.State{
		Collections: manager.Collections,
		Prefs:       prefs,
		PortalConf:  portalConf,
		Input: models.InputState{
			Focused: true,
		},
		SelectedIndex: -1,
		SliceStart:    -1,
		Refresh: func() {
			p.Send(cursor.Blink())
		},
		StatusBar: app.StatusBar{
			Storage:  storageType,
			UnitRoot: unitRoot,
			Nick:     prefs.User.Nick,
		},
		FindLesson: manager.FindLesson,
		LessonKey:  manager.LessonKey,
	}
	for _, warning := range manager.Warnings() {
		appState.Warnings = append(appState.Warnings, warning.String())
	}
	if !prefs.Support.WelcomeWizardFinished && !noWizard {
		appState.Route = app.Route{Type: app.RouteType_Wizard}
	}

	appState.OnOpenLesson = func(lesson *models.LessonView) {
		err := manager.MarkOpened(lesson)
		if err != nil {
			appState.StatusBar.Error = err.Error()
			return
		}
		stateConf.LastLesson = manager.LessonKey(lesson.Data)
		data.SaveConfig(stateConf)
	}
	appState.OnToggleCompleted = func(lesson *models.LessonView) {
		err := manager.ToggleCompleted(lesson)
		if err != nil {
			appState.StatusBar.Error = err.Error()
		}
	}
	appState.OnLaunchProgram = func(info *models.ProgramLaunchInfo) {
		go func() {
			_, err := launcher.Launch(info)
			if err != nil {
				appState.StatusBar.Error = err.Error()
			}
			p.Send(cursor.Blink())
		}()
	}
	appState.OnOpenExternal = func(url string) {
		go func() {
			err := launcher.OpenExternal(url)
			if err != nil {
				appState.StatusBar.Error = err.Error()
				p.Send(cursor.Blink())
			}
		}()
	}
	appState.OnCopyURL = func(url string) {
		err := clipboard.WriteAll(url)
		if err != nil {
			appState.StatusBar.Error = err.Error()
		}
	}
	appState.OnRescan = func() {
		go func() {
			err := manager.Rescan()
			if err != nil {
				appState.StatusBar.Error = err.Error()
			} else {
				appState.Collections = manager.Collections
				appState.Warnings = appState.Warnings[:0]
				for _, warning := range manager.Warnings() {
					appState.Warnings = append(appState.Warnings, warning.String())
				}
			}
			p.Send(cursor.Blink())
		}()
	}
	appState.OnSavePrefs = func() {
		err := data.SavePreferences(prefs)
		if err != nil {
			appState.StatusBar.Error = err.Error()
		}
	}
	appState.OnAskVision = func(question string, done func(hint *vision.Hint, err error)) {
		go func() {
			hint, err := askVision(visionClient, question, nil)
			done(hint, err)
			p.Send(cursor.Blink())
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if !noWatch {
		watcher, err := data.NewCatalogWatcher(unitRoot, func() {
			appState.OnRescan()
		})
		if err != nil {
			log.Warnf(ctx, "cannot watch %s: %v", unitRoot, err)
		} else {
			defer watcher.Close()
			if err := watcher.Start(ctx); err != nil {
				log.Warnf(ctx, "cannot watch %s: %v", unitRoot, err)
			}
		}
	}

	model := &Model{
		app: charm.NewCharmApp(&appState, app.App),
	}

	appState.Quit = func() {
		model.quit = true
		if visionClient != nil {
			visionClient.EndSession(context.Background())
		}
		stateConf.RunningPID = 0
		data.SaveConfig(stateConf)
	}

	p = tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newVisionClient(portalConf *models.PortalConfig) *vision.Client {
	if portalConf.Vision.BaseURL == "" {
		return nil
	}
	apiKey := os.Getenv(portalConf.Vision.APIKeyEnv)
	if apiKey == "" {
		return nil
	}
	return vision.NewClient(portalConf.Vision, apiKey)
}

// askVision captures the screen unless a screenshot is already given.
func askVision(client *vision.Client, question string, screenshot []byte) (*vision.Hint, error) {
	if client == nil {
		return nil, fmt.Errorf("assistant not configured: set vision base_url and the API key env var")
	}
	if screenshot == nil {
		var err error
		screenshot, err = vision.CaptureScreen()
		if err != nil {
			return nil, err
		}
	}
	return client.Analyze(context.Background(), screenshot, question)
}

type Model struct {
	quit bool
	app  *charm.CharmApp[app.State]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.app.Update(msg)
	if m.quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	return m.app.Render()
}
