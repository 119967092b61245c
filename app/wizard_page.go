package app

import (
	"strconv"
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"

	"github.com/schulstick/portal/component"
	"github.com/schulstick/portal/models"
)

type WizardStep int

const (
	WizardStep_Nick WizardStep = iota
	WizardStep_Grade
)

type WizardState struct {
	Step       WizardStep
	NickInput  models.InputState
	GradeInput models.InputState
	Err        string
}

// WizardPage is the first-run welcome wizard: it asks for a nick and a
// grade, then marks the wizard finished in the preferences.
func WizardPage(state *State) *dom.Node {
	wizard := &state.Wizard

	var nodes []*dom.Node
	nodes = append(nodes,
		dom.Text("Welcome!", styles.Style{Bold: true, Color: colors.PURPLE_PRIMARY}),
		dom.Br(),
	)

	switch wizard.Step {
	case WizardStep_Nick:
		wizard.NickInput.Focused = true
		nodes = append(nodes,
			dom.Text("What should we call you?"),
			dom.Br(),
			component.SearchInput(component.InputProps{
				Placeholder: state.Prefs.User.Nick,
				State:       &wizard.NickInput,
				OnEnter: func(value string) bool {
					value = strings.TrimSpace(value)
					if value != "" {
						state.Prefs.User.Nick = value
					}
					wizard.Step = WizardStep_Grade
					wizard.Err = ""
					return true
				},
			}),
		)
	case WizardStep_Grade:
		wizard.GradeInput.Focused = true
		nodes = append(nodes,
			dom.Text("Which grade are you in? (1-13)"),
			dom.Br(),
			component.SearchInput(component.InputProps{
				Placeholder: strconv.Itoa(state.Prefs.Skill.Grade),
				State:       &wizard.GradeInput,
				InputType:   "number",
				OnEnter: func(value string) bool {
					value = strings.TrimSpace(value)
					if value != "" {
						grade, err := strconv.Atoi(value)
						if err != nil || grade < 1 || grade > 13 {
							wizard.Err = "please enter a grade between 1 and 13"
							return false
						}
						state.Prefs.Skill.Grade = grade
					}
					finishWizard(state)
					return true
				},
			}),
		)
	}

	nodes = append(nodes, dom.Br())
	if wizard.Err != "" {
		nodes = append(nodes, dom.Text(wizard.Err, styles.Style{Color: colors.RED_ERROR}))
	} else {
		nodes = append(nodes, dom.Text("enter to continue", styles.Style{Color: colors.GREY_TEXT}))
	}

	return dom.Div(dom.DivProps{}, nodes...)
}

func finishWizard(state *State) {
	state.Prefs.Support.WelcomeWizardFinished = true
	if state.OnSavePrefs != nil {
		state.OnSavePrefs()
	}
	state.StatusBar.Nick = state.Prefs.User.Nick
	state.GoBrowser()
}
