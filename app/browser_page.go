package app

import (
	"strings"

	"github.com/xhd2015/go-dom-tui/dom"

	"github.com/schulstick/portal/component"
	"github.com/schulstick/portal/component/layout"
	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/ui/search"
)

type browserItemKind int

const (
	browserItem_Collection browserItemKind = iota
	browserItem_Course
	browserItem_Lesson
)

type browserItem struct {
	Kind       browserItemKind
	Collection *models.CollectionView
	Course     *models.CourseView
	Lesson     *models.LessonView
	Depth      int
	IsLast     []bool
}

// flattenCollections turns the view tree into the flat list the browser
// navigates. Lessons of collapsed courses are omitted.
func flattenCollections(collections []*models.CollectionView) []browserItem {
	var items []browserItem
	for _, collection := range collections {
		items = append(items, browserItem{
			Kind:       browserItem_Collection,
			Collection: collection,
		})
		for ci, course := range collection.Courses {
			courseIsLast := ci == len(collection.Courses)-1
			items = append(items, browserItem{
				Kind:   browserItem_Course,
				Course: course,
				Depth:  1,
				IsLast: []bool{courseIsLast},
			})
			if course.Collapsed {
				continue
			}
			for li, lesson := range course.Lessons {
				items = append(items, browserItem{
					Kind:   browserItem_Lesson,
					Course: course,
					Lesson: lesson,
					Depth:  2,
					IsLast: []bool{courseIsLast, li == len(course.Lessons)-1},
				})
			}
		}
	}
	return items
}

func BrowserPage(state *State, width int, availableHeight int) *dom.Node {
	collections := search.FilterCollections(state.Collections, state.SearchQuery)
	items := flattenCollections(collections)

	// SelectedIndex -1 means the input line has focus
	if state.SelectedIndex >= len(items) {
		state.SelectedIndex = len(items) - 1
	}

	children := make([]*dom.Node, 0, len(items))
	for i, item := range items {
		children = append(children, BrowserItem(BrowserItemProps{
			Item:       item,
			Index:      i,
			Total:      len(items),
			IsSelected: i == state.SelectedIndex,
			State:      state,
		}))
	}

	// one line reserved for the search input
	listHeight := availableHeight - 1
	if listHeight < 3 {
		listHeight = 3
	}

	return dom.Fragment(
		dom.Ul(dom.DivProps{},
			layout.VScroller(layout.VScrollerProps{
				Children:      children,
				Height:        listHeight,
				BeginIndex:    state.SliceStart,
				SelectedIndex: state.SelectedIndex,
			}),
		),
		func() *dom.Node {
			placeholder := "type ? to search lessons"
			if state.IsSearchActive {
				placeholder = "search lessons (ESC to exit search)"
			}

			return component.SearchInput(component.InputProps{
				Placeholder: placeholder,
				State:       &state.Input,
				OnKeyDown: func(event *dom.DOMEvent) bool {
					keyEvent := event.KeydownEvent
					switch keyEvent.KeyType {
					case dom.KeyTypeUp:
						state.Input.Focused = false
						if state.SelectedIndex < 0 {
							state.SelectedIndex = 0
						}
						event.PreventDefault()
					case dom.KeyTypeEsc:
						if state.IsSearchActive {
							state.ClearSearch()
						}
					case dom.KeyTypeCtrlC:
						if state.IsSearchActive {
							state.ClearSearch()
							event.PreventDefault()
							event.StopPropagation()
						}
					}
					return false
				},
				OnEnter: func(s string) bool {
					if strings.TrimSpace(s) == "" {
						return false
					}

					if state.IsSearchActive {
						// keep the filter, move focus to the list
						state.Input.Focused = false
						return false
					}

					if s == "exit" || s == "quit" || s == "q" {
						state.Quit()
						return true
					}

					switch s {
					case "/reload":
						if state.OnRescan != nil {
							state.OnRescan()
						}
						return true
					case "/help":
						state.GoHelp()
						return true
					}
					return true
				},
				OnSearchChange: func(query string) {
					state.SearchQuery = query
				},
				OnSearchActivate: func() {
					state.IsSearchActive = true
				},
				OnSearchDeactivate: func() {
					state.IsSearchActive = false
					state.SearchQuery = ""
				},
			})
		}(),
	)
}
