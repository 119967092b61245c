package help

import (
	_ "embed"
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

//go:embed help.md
var helpContent string

// HelpProps contains properties for the Help component
type HelpProps struct {
	ScrollOffset   int
	ViewportHeight int
	OnScroll       func(delta int)
	OnClose        func()
}

// eventKey returns the key string of a keydown event: the typed runes when
// present, otherwise the named key type (e.g. "enter", "esc", "up").
func eventKey(e *dom.DOMEvent) string {
	keyEvent := e.KeydownEvent
	if keyEvent == nil {
		return ""
	}
	if len(keyEvent.Runes) > 0 {
		return string(keyEvent.Runes)
	}
	return string(keyEvent.KeyType)
}

// Help renders the help page with embedded markdown content
func Help(props HelpProps) *dom.Node {
	lines := strings.Split(helpContent, "\n")

	totalLines := len(lines)
	startLine := props.ScrollOffset
	endLine := startLine + props.ViewportHeight

	if startLine < 0 {
		startLine = 0
	}
	if endLine > totalLines {
		endLine = totalLines
	}
	if startLine >= totalLines {
		startLine = totalLines - 1
		if startLine < 0 {
			startLine = 0
		}
	}

	var nodes []*dom.Node

	if startLine > 0 {
		nodes = append(nodes, dom.Text("↑ (more content above)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
		nodes = append(nodes, dom.Br())
	}

	for _, line := range lines[startLine:endLine] {
		line = strings.TrimRight(line, " ")

		if line == "" {
			nodes = append(nodes, dom.Br())
			continue
		}

		if strings.HasPrefix(line, "# ") {
			nodes = append(nodes, dom.Text(strings.TrimPrefix(line, "# "), styles.Style{
				Bold:  true,
				Color: colors.GREEN_SUCCESS,
			}))
			nodes = append(nodes, dom.Br())
			continue
		}
		if strings.HasPrefix(line, "## ") {
			nodes = append(nodes, dom.Text(strings.TrimPrefix(line, "## "), styles.Style{
				Bold:  true,
				Color: colors.PURPLE_PRIMARY,
			}))
			nodes = append(nodes, dom.Br())
			continue
		}
		if strings.HasPrefix(line, "- ") {
			nodes = append(nodes, dom.Text("  • "+strings.TrimPrefix(line, "- "), styles.Style{}))
			nodes = append(nodes, dom.Br())
			continue
		}

		nodes = append(nodes, dom.Text(line, styles.Style{}))
		nodes = append(nodes, dom.Br())
	}

	if endLine < totalLines {
		nodes = append(nodes, dom.Text("↓ (more content below)", styles.Style{
			Color: colors.GREY_TEXT,
		}))
		nodes = append(nodes, dom.Br())
	}

	return dom.Div(dom.DivProps{
		Focusable: true,
		Focused:   true,
		OnKeyDown: func(e *dom.DOMEvent) {
			switch eventKey(e) {
			case "j", "down":
				if props.OnScroll != nil {
					props.OnScroll(1)
				}
			case "k", "up":
				if props.OnScroll != nil {
					props.OnScroll(-1)
				}
			case "esc", "q", "h":
				if props.OnClose != nil {
					props.OnClose()
				}
			}
		},
	}, nodes...)
}
