package app

import (
	"fmt"
	"time"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"

	"github.com/schulstick/portal/app/help"
	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/vision"
)

const (
	CtrlCExitDelayMs = 1000
)

type StatusBar struct {
	Storage  string
	UnitRoot string
	Nick     string
	Error    string
}

type State struct {
	Collections []*models.CollectionView
	Prefs       *models.Preferences
	PortalConf  *models.PortalConfig

	Route Route

	// browser page
	Input          models.InputState
	SearchQuery    string
	IsSearchActive bool
	SelectedIndex  int
	SliceStart     int

	Tutor  TutorState
	Wizard WizardState

	HelpScrollOffset int

	StatusBar StatusBar

	Warnings []string

	Quit    func()
	Refresh func()

	OnOpenLesson      func(lesson *models.LessonView)
	OnToggleCompleted func(lesson *models.LessonView)
	OnLaunchProgram   func(info *models.ProgramLaunchInfo)
	OnOpenExternal    func(url string)
	OnCopyURL         func(url string)
	OnRescan          func()
	OnSavePrefs       func()
	OnAskVision       func(question string, done func(hint *vision.Hint, err error))

	// FindLesson resolves a tutor route's lesson key back to the view.
	FindLesson func(key string) *models.LessonView
	// LessonKey returns the progress key for a lesson.
	LessonKey func(lesson *models.Lesson) string

	LastCtrlC time.Time
}

func (state *State) ClearSearch() {
	state.IsSearchActive = false
	state.SearchQuery = ""
	state.Input.Reset()
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					state.Refresh()
				}()
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("Schulstick Portal", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),

		RenderRoute(state, window),

		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("h: help  q: quit")
		}(),
		AppStatusBar(state),
	)
}

func RenderRoute(state *State, window *dom.Window) *dom.Node {
	// Fixed frame overhead: title, hint line, status bar
	const FIXED_FRAME_HEIGHT = 3
	availableHeight := window.Height - FIXED_FRAME_HEIGHT
	if availableHeight < 5 {
		availableHeight = 5
	}

	switch state.Route.Type {
	case RouteType_Wizard:
		return WizardPage(state)
	case RouteType_Browser:
		return BrowserPage(state, window.Width, availableHeight)
	case RouteType_Tutor:
		return TutorPage(state, window.Width, availableHeight)
	case RouteType_Help:
		return help.Help(help.HelpProps{
			ScrollOffset:   state.HelpScrollOffset,
			ViewportHeight: availableHeight,
			OnScroll: func(delta int) {
				state.HelpScrollOffset += delta
				if state.HelpScrollOffset < 0 {
					state.HelpScrollOffset = 0
				}
			},
			OnClose: func() {
				state.GoBrowser()
			},
		})
	default:
		return dom.Text(fmt.Sprintf("unknown route: %d", state.Route.Type), styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		})
	}
}
