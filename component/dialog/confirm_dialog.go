package dialog

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

// ConfirmDialogProps contains the properties for the confirmation dialog
type ConfirmDialogProps struct {
	SelectedButton  int
	PromptText      string // e.g., "Launch GIMP?"
	ConfirmText     string // e.g., "[Launch]" or "[OK]"
	CancelText      string // e.g., "[Cancel]"
	OnConfirm       func()
	OnCancel        func()
	OnNavigateRight func()
	OnNavigateLeft  func()
}

// ConfirmDialog creates a confirmation dialog with confirm and cancel buttons
func ConfirmDialog(props ConfirmDialogProps) *dom.Node {
	promptText := props.PromptText
	if promptText == "" {
		promptText = "Are you sure?"
	}

	confirmText := props.ConfirmText
	if confirmText == "" {
		confirmText = "[OK]"
	}

	cancelText := props.CancelText
	if cancelText == "" {
		cancelText = "[Cancel]"
	}

	return dom.Div(dom.DivProps{
		Style: styles.Style{},
	},
		dom.TextWithProps(promptText, dom.TextNodeProps{
			Style: styles.Style{},
		}),
		dom.TextWithProps(confirmText, dom.TextNodeProps{
			Focused:   props.SelectedButton == 0,
			Focusable: true,
			Style: styles.Style{
				Color: colors.GREEN_SUCCESS,
				Bold:  props.SelectedButton == 0,
			},
			OnKeyDown: func(d *dom.DOMEvent) {
				keyEvent := d.KeydownEvent
				switch keyEvent.KeyType {
				case dom.KeyTypeEsc:
					props.OnCancel()
				case dom.KeyTypeRight:
					props.OnNavigateRight()
				case dom.KeyTypeEnter:
					props.OnConfirm()
				}
			},
		}),
		dom.TextWithProps(cancelText, dom.TextNodeProps{
			Focused:   props.SelectedButton == 1,
			Focusable: true,
			Style: styles.Style{
				Color: "blue",
				Bold:  props.SelectedButton == 1,
			},
			OnKeyDown: func(d *dom.DOMEvent) {
				keyEvent := d.KeydownEvent
				switch keyEvent.KeyType {
				case dom.KeyTypeEsc:
					props.OnCancel()
				case dom.KeyTypeLeft:
					props.OnNavigateLeft()
				case dom.KeyTypeEnter:
					props.OnCancel()
				}
			},
		}),
	)
}
