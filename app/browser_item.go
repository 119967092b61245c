package app

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"

	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/ui/tree"
)

type BrowserItemProps struct {
	Item       browserItem
	Index      int
	Total      int
	IsSelected bool
	State      *State
}

func BrowserItem(props BrowserItemProps) *dom.Node {
	switch props.Item.Kind {
	case browserItem_Collection:
		return collectionHeading(props)
	case browserItem_Course:
		return courseLine(props)
	default:
		return lessonLine(props)
	}
}

func collectionHeading(props BrowserItemProps) *dom.Node {
	title := props.Item.Collection.Data.Title
	if title == "" {
		title = props.Item.Collection.Data.Name
	}
	return dom.Li(dom.ListItemProps{
		Focusable:  dom.Focusable(true),
		Selected:   props.IsSelected,
		Focused:    props.IsSelected,
		ItemPrefix: dom.String(""),
		OnFocus: func() {
			props.State.SelectedIndex = props.Index
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			browserNavKey(props, e)
		},
	}, dom.Text(title, styles.Style{
		Bold:  true,
		Color: colors.PURPLE_PRIMARY,
	}))
}

func courseLine(props BrowserItemProps) *dom.Node {
	course := props.Item.Course
	treePrefix := tree.BuildTreePrefix(props.Item.Depth, props.Item.IsLast)

	return dom.Li(dom.ListItemProps{
		Focusable:  dom.Focusable(true),
		Selected:   props.IsSelected,
		Focused:    props.IsSelected,
		ItemPrefix: dom.String(treePrefix),
		OnFocus: func() {
			props.State.SelectedIndex = props.Index
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			switch eventKey(e) {
			case "enter", "t", " ":
				course.Collapsed = !course.Collapsed
			default:
				browserNavKey(props, e)
			}
		},
	}, dom.Text(tree.RenderCourse(course), styles.Style{
		Bold:  props.IsSelected,
		Color: selectedColor(props.IsSelected),
	}))
}

func lessonLine(props BrowserItemProps) *dom.Node {
	lesson := props.Item.Lesson
	state := props.State
	treePrefix := tree.BuildTreePrefix(props.Item.Depth, props.Item.IsLast)

	completed := lesson.Progress != nil && lesson.Progress.Completed
	prefix := treePrefix
	if completed {
		prefix += "✓"
	} else {
		prefix += "•"
	}

	var textNodes []*dom.Node
	if len(lesson.MatchTexts) > 0 {
		for _, mt := range lesson.MatchTexts {
			style := styles.Style{
				Color:         selectedColor(props.IsSelected),
				Strikethrough: completed,
			}
			if mt.Match {
				style.Bold = true
				style.Color = colors.GREEN_SUCCESS
			}
			textNodes = append(textNodes, dom.Text(mt.Text, style))
		}
	} else {
		textNodes = append(textNodes, dom.Text(lesson.Data.Title, styles.Style{
			Color:         selectedColor(props.IsSelected),
			Strikethrough: completed,
		}))
	}
	if stars := tree.SkillStars(lesson.Data.SkillLevel()); stars != "" {
		textNodes = append(textNodes, dom.Text(" "+stars, styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}

	return dom.Li(dom.ListItemProps{
		Focusable:  dom.Focusable(true),
		Selected:   props.IsSelected,
		Focused:    props.IsSelected,
		ItemPrefix: dom.String(prefix),
		OnFocus: func() {
			state.SelectedIndex = props.Index
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			switch eventKey(e) {
			case "enter":
				if state.OnOpenLesson != nil {
					state.OnOpenLesson(lesson)
				}
				state.GoTutor(lessonKeyOf(state, lesson))
			case " ":
				if state.OnToggleCompleted != nil {
					state.OnToggleCompleted(lesson)
				}
			case "c":
				if state.OnCopyURL != nil {
					state.OnCopyURL(lesson.Data.TutorialURL(state.PortalConf))
				}
			default:
				browserNavKey(props, e)
			}
		},
	}, textNodes...)
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

func browserNavKey(props BrowserItemProps, e *dom.DOMEvent) {
	state := props.State
	switch eventKey(e) {
	case "j":
		state.SelectedIndex = props.Index + 1
		if state.SelectedIndex >= props.Total {
			state.SelectedIndex = props.Total - 1
		}
	case "k":
		state.SelectedIndex = props.Index - 1
		if state.SelectedIndex < 0 {
			state.SelectedIndex = 0
		}
	case "/":
		state.SelectedIndex = -1
		state.Input.Focused = true
	case "?":
		state.SelectedIndex = -1
		state.Input.Focused = true
		if !strings.HasPrefix(state.Input.Value, "?") {
			state.Input.Value = "?" + state.Input.Value
			state.Input.CursorPosition = len(state.Input.Value)
		}
	case "r":
		if state.OnRescan != nil {
			state.OnRescan()
		}
	case "h":
		state.GoHelp()
	case "q":
		state.Quit()
	}
}

func selectedColor(selected bool) string {
	if selected {
		return colors.GREEN_SUCCESS
	}
	return ""
}

func lessonKeyOf(state *State, lesson *models.LessonView) string {
	// lesson keys come from the catalog manager; fall back to the path
	if state.LessonKey != nil {
		return state.LessonKey(lesson.Data)
	}
	return lesson.Data.Path
}
