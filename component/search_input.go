package component

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/dom"

	"github.com/schulstick/portal/models"
)

type InputProps struct {
	Placeholder        string
	State              *models.InputState
	OnEnter            func(string) bool
	OnSearchChange     func(string)
	OnSearchActivate   func()
	OnSearchDeactivate func()
	OnKeyDown          func(event *dom.DOMEvent) bool
	InputType          string
	Width              int
}

// SearchInput is a single-line input. When the value starts with "?"
// the search callbacks fire with the query behind the prefix; the app
// uses this to filter the lesson tree as the user types.
func SearchInput(props InputProps) *dom.Node {
	width := props.Width
	if width == 0 {
		width = 50
	}

	return dom.Input(dom.InputProps{
		Placeholder:    props.Placeholder,
		Value:          props.State.Value,
		Focused:        props.State.Focused,
		CursorPosition: props.State.CursorPosition,
		Focusable:      dom.Focusable(true),
		Width:          width,
		OnFocus: func() {
			props.State.Focused = true
		},
		OnBlur: func() {
			props.State.Focused = false
		},
		InputType: props.InputType,
		OnChange: func(value string) {
			props.State.Value = value

			if props.OnSearchActivate != nil && props.OnSearchChange != nil && props.OnSearchDeactivate != nil {
				if strings.HasPrefix(value, "?") {
					props.OnSearchActivate()
					query := strings.TrimPrefix(value, "?")
					props.OnSearchChange(query)
				} else {
					props.OnSearchDeactivate()
				}
			}
		},
		OnCursorMove: func(position int) {
			if position < 0 {
				position = 0
			}
			rnLen := runeLength(props.State.Value)
			if position > rnLen+1 {
				position = rnLen + 1
			}
			props.State.CursorPosition = position
		},
		OnKeyDown: func(event *dom.DOMEvent) {
			if props.OnKeyDown != nil {
				if props.OnKeyDown(event) {
					return
				}
			}
			keyEvent := event.KeydownEvent
			switch keyEvent.KeyType {
			case dom.KeyTypeEnter:
				if props.State.Value == "" {
					return
				}
				if props.OnEnter != nil && props.OnEnter(props.State.Value) {
					props.State.Value = ""
					props.State.CursorPosition = 0
				}
			case dom.KeyTypeEsc:
				if props.OnSearchDeactivate != nil && strings.HasPrefix(props.State.Value, "?") {
					props.OnSearchDeactivate()
					props.State.Value = ""
					props.State.CursorPosition = 0
				}
			}
		},
	})
}

func runeLength(s string) int {
	return len([]rune(s))
}
