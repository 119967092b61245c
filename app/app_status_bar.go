package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

const UIWidth = 80

// AppStatusBar renders the bottom status bar
func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	if state.StatusBar.Storage != "" {
		nodes = append(nodes, dom.Text(state.StatusBar.Storage, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.UnitRoot != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.UnitRoot, styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Nick != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Nick, styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}
	if state.Tutor.VisionBusy {
		nodes = append(nodes, dom.Text("  •", styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}))
		nodes = append(nodes, dom.Text("Asking...", styles.Style{
			Bold:  true,
			Color: colors.GREEN_SUCCESS,
		}))
	}

	hasRightContent := state.IsSearchActive || len(state.Warnings) > 0
	if hasRightContent {
		nodes = append(nodes, dom.Spacer(dom.WithMaxSize(40)))

		var modeCount int
		if state.IsSearchActive {
			nodes = append(nodes, dom.Text("search", styles.Style{
				Bold:  true,
				Color: colors.GREY_TEXT,
			}))
			modeCount++
		}
		if len(state.Warnings) > 0 {
			if modeCount > 0 {
				nodes = append(nodes, dom.Text(" ", styles.Style{}))
			}
			nodes = append(nodes, dom.Text(fmt.Sprintf("%d warnings", len(state.Warnings)), styles.Style{
				Bold:  true,
				Color: "yellow",
			}))
		}
	}

	return dom.HDiv(dom.DivProps{Width: UIWidth}, nodes...)
}
