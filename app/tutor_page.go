package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"

	"github.com/schulstick/portal/component"
	"github.com/schulstick/portal/component/dialog"
	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/vision"
)

func TutorPage(state *State, width int, availableHeight int) *dom.Node {
	tutor := &state.Tutor

	if tutor.Lesson == nil && state.Route.Tutor != nil && state.FindLesson != nil {
		tutor.EnterLesson(state.Route.Tutor.LessonKey, state.FindLesson(state.Route.Tutor.LessonKey))
	}

	if tutor.LoadErr != "" {
		return dom.Div(dom.DivProps{
			Focusable: true,
			Focused:   true,
			OnKeyDown: func(e *dom.DOMEvent) {
				if eventKey(e) == "esc" || eventKey(e) == "q" {
					leaveTutor(state)
				}
			},
		},
			dom.Text(tutor.LoadErr, styles.Style{Bold: true, Color: colors.RED_ERROR}),
			dom.Br(),
			dom.Text("esc: back", styles.Style{Color: colors.GREY_TEXT}),
		)
	}

	header := tutorHeader(tutor)

	var nodes []*dom.Node
	nodes = append(nodes, header, dom.Br())
	if tutor.Collapsed {
		nodes = append(nodes, dom.Text("(collapsed, t to expand)", styles.Style{Color: colors.GREY_TEXT}))
	} else {
		nodes = append(nodes, dom.Text(renderStep(tutor, contentWidth(tutor, width))))
	}

	switch tutor.Mode {
	case TutorMode_LaunchConfirm:
		nodes = append(nodes, dom.Br(), launchConfirmDialog(state))
	case TutorMode_ExternalConfirm:
		nodes = append(nodes, dom.Br(), externalConfirmDialog(state))
	case TutorMode_VisionPrompt:
		nodes = append(nodes, dom.Br(), visionPrompt(state))
	}

	if tutor.VisionErr != "" {
		nodes = append(nodes, dom.Br(), dom.Text(tutor.VisionErr, styles.Style{
			Color: colors.RED_ERROR,
		}))
	}
	if tutor.VisionHint != nil {
		nodes = append(nodes, dom.Br(), visionHintPanel(tutor.VisionHint))
	}

	nodes = append(nodes, dom.Br(), dom.Text(tutorKeyHint(tutor), styles.Style{
		Color: colors.GREY_TEXT,
	}))

	if tutor.Mode == TutorMode_Default {
		return dom.Div(dom.DivProps{
			Focusable: true,
			Focused:   true,
			OnKeyDown: func(e *dom.DOMEvent) {
				tutorKeyDown(state, e)
			},
		}, nodes...)
	}
	return dom.Div(dom.DivProps{}, nodes...)
}

func tutorHeader(tutor *TutorState) *dom.Node {
	title := ""
	if tutor.Lesson != nil {
		title = tutor.Lesson.Data.Title
	}
	step := fmt.Sprintf("step %d/%d", tutor.StepIndex+1, len(tutor.Steps))
	dock := fmt.Sprintf("dock:%s", tutor.Dock())
	return dom.HDiv(dom.DivProps{},
		dom.Text(title, styles.Style{Bold: true, Color: colors.PURPLE_PRIMARY}),
		dom.Text("  "+step, styles.Style{Color: colors.GREY_TEXT}),
		dom.Text("  "+dock, styles.Style{Color: colors.GREY_TEXT}),
	)
}

// contentWidth narrows the step text when the lesson wants a side dock,
// mirroring the window geometry of a docked tutor.
func contentWidth(tutor *TutorState, width int) int {
	if width <= 0 {
		width = UIWidth
	}
	switch tutor.Dock() {
	case models.DockPosition_Left, models.DockPosition_Right:
		narrowed := width * 2 / 3
		if narrowed >= 40 {
			return narrowed
		}
	}
	return width
}

// renderStep renders the current step through glamour, cached until the
// step or terminal width changes.
func renderStep(tutor *TutorState, width int) string {
	if width <= 0 {
		width = UIWidth
	}
	if tutor.rendered != "" && tutor.renderedStep == tutor.StepIndex && tutor.renderedWidth == width {
		return tutor.rendered
	}

	raw := tutor.CurrentStep()
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return raw
	}
	out, err := renderer.Render(raw)
	if err != nil {
		return raw
	}
	tutor.rendered = strings.TrimRight(out, "\n")
	tutor.renderedStep = tutor.StepIndex
	tutor.renderedWidth = width
	return tutor.rendered
}

func tutorKeyHint(tutor *TutorState) string {
	hints := []string{"n/p: step", "esc: back"}
	if tutor.Lesson != nil && tutor.Lesson.Data.Metadata != nil && tutor.Lesson.Data.Metadata.ProgramLaunchInfo != nil {
		hints = append(hints, "l: launch")
	}
	hints = append(hints, "u: open in browser", "c: copy url", "v: ask", "t: collapse", "D: dock", "space: done")
	return strings.Join(hints, "  ")
}

func tutorKeyDown(state *State, e *dom.DOMEvent) {
	tutor := &state.Tutor
	switch eventKey(e) {
	case "n", "right":
		tutor.NextStep()
	case "p", "left":
		tutor.PrevStep()
	case "l":
		if tutor.Lesson != nil && tutor.Lesson.Data.Metadata != nil && tutor.Lesson.Data.Metadata.ProgramLaunchInfo != nil {
			tutor.Mode = TutorMode_LaunchConfirm
			tutor.ConfirmButton = 0
		}
	case "u":
		if tutor.Lesson == nil {
			return
		}
		url := tutor.Lesson.Data.TutorialURL(state.PortalConf)
		if state.Prefs != nil && state.Prefs.Support.AllowExternalLinks {
			if state.OnOpenExternal != nil {
				state.OnOpenExternal(url)
			}
			return
		}
		tutor.PendingURL = url
		tutor.Mode = TutorMode_ExternalConfirm
		tutor.ConfirmButton = 0
	case "c":
		if tutor.Lesson != nil && state.OnCopyURL != nil {
			state.OnCopyURL(tutor.Lesson.Data.TutorialURL(state.PortalConf))
		}
	case "v":
		tutor.Mode = TutorMode_VisionPrompt
		tutor.VisionInput.Reset()
		tutor.VisionInput.Focused = true
	case "V":
		if tutor.LastVisionHint != nil {
			tutor.VisionHint = tutor.LastVisionHint
			tutor.VisionErr = ""
		}
	case "t":
		tutor.Collapsed = !tutor.Collapsed
	case "D":
		tutor.CycleDock()
	case " ":
		if tutor.Lesson != nil && state.OnToggleCompleted != nil {
			state.OnToggleCompleted(tutor.Lesson)
		}
	case "esc", "q":
		if tutor.VisionHint != nil {
			tutor.VisionHint = nil
			return
		}
		leaveTutor(state)
	}
}

func leaveTutor(state *State) {
	state.Tutor = TutorState{}
	state.GoBrowser()
}

func launchConfirmDialog(state *State) *dom.Node {
	tutor := &state.Tutor
	info := tutor.Lesson.Data.Metadata.ProgramLaunchInfo
	return dialog.ConfirmDialog(dialog.ConfirmDialogProps{
		SelectedButton: tutor.ConfirmButton,
		PromptText:     fmt.Sprintf("Launch %s?", info.BinName),
		ConfirmText:    "[Launch]",
		CancelText:     "[Cancel]",
		OnConfirm: func() {
			tutor.Mode = TutorMode_Default
			if state.OnLaunchProgram != nil {
				state.OnLaunchProgram(info)
			}
		},
		OnCancel: func() {
			tutor.Mode = TutorMode_Default
		},
		OnNavigateRight: func() {
			tutor.ConfirmButton = 1
		},
		OnNavigateLeft: func() {
			tutor.ConfirmButton = 0
		},
	})
}

func externalConfirmDialog(state *State) *dom.Node {
	tutor := &state.Tutor
	return dialog.ConfirmDialog(dialog.ConfirmDialogProps{
		SelectedButton: tutor.ConfirmButton,
		PromptText:     "Open external link? " + tutor.PendingURL,
		ConfirmText:    "[Open]",
		CancelText:     "[Cancel]",
		OnConfirm: func() {
			tutor.Mode = TutorMode_Default
			if state.OnOpenExternal != nil {
				state.OnOpenExternal(tutor.PendingURL)
			}
			if state.Prefs != nil && state.Prefs.Support.RememberExternalLinks {
				state.Prefs.Support.AllowExternalLinks = true
				if state.OnSavePrefs != nil {
					state.OnSavePrefs()
				}
			}
		},
		OnCancel: func() {
			tutor.Mode = TutorMode_Default
		},
		OnNavigateRight: func() {
			tutor.ConfirmButton = 1
		},
		OnNavigateLeft: func() {
			tutor.ConfirmButton = 0
		},
	})
}

func visionPrompt(state *State) *dom.Node {
	tutor := &state.Tutor
	return component.SearchInput(component.InputProps{
		Placeholder: "ask about the screen (ESC to cancel)",
		State:       &tutor.VisionInput,
		OnKeyDown: func(event *dom.DOMEvent) bool {
			if event.KeydownEvent.KeyType == dom.KeyTypeEsc {
				tutor.Mode = TutorMode_Default
				tutor.VisionInput.Reset()
				return true
			}
			return false
		},
		OnEnter: func(question string) bool {
			question = strings.TrimSpace(question)
			if question == "" {
				return false
			}
			tutor.Mode = TutorMode_Default
			tutor.VisionBusy = true
			tutor.VisionErr = ""
			if state.OnAskVision != nil {
				state.OnAskVision(question, func(hint *vision.Hint, err error) {
					tutor.VisionBusy = false
					if err != nil {
						tutor.VisionErr = err.Error()
						return
					}
					tutor.VisionHint = hint
					tutor.LastVisionHint = hint
				})
			}
			return true
		},
	})
}

func visionHintPanel(hint *vision.Hint) *dom.Node {
	nodes := []*dom.Node{
		dom.Text(fmt.Sprintf("Look at (%d, %d)", hint.LookAtCoordinates[0], hint.LookAtCoordinates[1]), styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}),
		dom.Br(),
	}
	for i, instruction := range hint.Instructions {
		nodes = append(nodes, dom.Text(fmt.Sprintf("%d. %s", i+1, instruction), styles.Style{}))
		nodes = append(nodes, dom.Br())
	}
	nodes = append(nodes, dom.Text("esc: dismiss  V: show again", styles.Style{
		Color: colors.GREY_TEXT,
	}))
	return dom.Div(dom.DivProps{
		Style: styles.Style{BorderColor: colors.PURPLE_PRIMARY},
	}, nodes...)
}
