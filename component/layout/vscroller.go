package layout

import (
	"fmt"

	domLayout "github.com/xhd2015/go-dom-tui/charm/layout"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
)

type VScrollerProps struct {
	Children      []*dom.Node
	Height        int
	BeginIndex    int
	SelectedIndex int
}

// VScroller creates a vertical scrolling container that shows a sliding window of children
// starting from BeginIndex and fitting within the specified Height.
// It includes headers at the top and bottom indicating items outside the visible area.
// The SelectedIndex ensures the selected item is always visible.
func VScroller(props VScrollerProps) *dom.Node {
	if len(props.Children) == 0 {
		return dom.Div(dom.DivProps{})
	}

	result := SliceVertical(props.Children, props.BeginIndex, props.SelectedIndex, props.Height)

	var resultNodes []*dom.Node

	if result.ShowTopIndicator {
		topHeader := dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↑ (%d items above)", result.ItemsAbove), styles.Style{
				Color: "8",
			}),
		)
		resultNodes = append(resultNodes, topHeader)
	}

	visibleChildren := props.Children[result.BeginIndex:result.EndIndex]
	resultNodes = append(resultNodes, visibleChildren...)

	if result.ShowBottomIndicator {
		bottomHeader := dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↓ (%d items below)", result.ItemsBelow), styles.Style{
				Color: "8",
			}),
		)
		resultNodes = append(resultNodes, bottomHeader)
	}

	return dom.Div(dom.DivProps{}, resultNodes...)
}

// SliceVerticalResult contains the result of vertical slicing calculation
type SliceVerticalResult struct {
	BeginIndex          int
	EndIndex            int
	ShowTopIndicator    bool
	ShowBottomIndicator bool
	ItemsAbove          int
	ItemsBelow          int
}

// SliceVertical calculates which nodes fit within the given height, accounting
// for scroll indicators. It ensures both beginIndex and selectedIndex are
// visible, adjusting beginIndex if necessary.
func SliceVertical(nodes []*dom.Node, beginIndex int, selectedIndex int, height int) SliceVerticalResult {
	if len(nodes) == 0 {
		return SliceVerticalResult{}
	}

	if beginIndex < 0 {
		beginIndex = 0
	}
	if beginIndex >= len(nodes) {
		beginIndex = len(nodes) - 1
	}

	if selectedIndex < 0 {
		selectedIndex = 0
	}
	if selectedIndex >= len(nodes) {
		selectedIndex = len(nodes) - 1
	}

	// If selected item is before the current window, scroll up
	if selectedIndex < beginIndex {
		beginIndex = selectedIndex
	}

	hasItemsAbove := beginIndex > 0
	const INDICATOR_HEIGHT = 1

	availableHeight := height
	if hasItemsAbove {
		availableHeight -= INDICATOR_HEIGHT
	}

	// Reserve space for the bottom indicator, reclaimed below when unused
	contentHeight := availableHeight - INDICATOR_HEIGHT
	if contentHeight < 1 {
		contentHeight = 1
	}

	currentHeight := 0
	endIndex := beginIndex

	for i := beginIndex; i < len(nodes); i++ {
		nodeHeight := domLayout.GetNodeRenderedHeight(nodes[i])
		if currentHeight+nodeHeight > contentHeight {
			break
		}
		currentHeight += nodeHeight
		endIndex = i + 1
	}

	hasItemsBelow := endIndex < len(nodes)

	if !hasItemsBelow && currentHeight < availableHeight {
		for i := endIndex; i < len(nodes); i++ {
			nodeHeight := domLayout.GetNodeRenderedHeight(nodes[i])
			if currentHeight+nodeHeight > availableHeight {
				break
			}
			currentHeight += nodeHeight
			endIndex = i + 1
		}
		hasItemsBelow = endIndex < len(nodes)
	}

	// If no children fit, show at least the first one
	if endIndex == beginIndex && beginIndex < len(nodes) {
		endIndex = beginIndex + 1
	}

	// Selected item below the visible range: scroll down minimally,
	// one begin index at a time, until it becomes visible
	if selectedIndex >= endIndex {
		for tryBegin := beginIndex + 1; tryBegin <= selectedIndex; tryBegin++ {
			testHasItemsAbove := tryBegin > 0
			testAvailableHeight := height
			if testHasItemsAbove {
				testAvailableHeight -= INDICATOR_HEIGHT
			}

			testContentHeight := testAvailableHeight - INDICATOR_HEIGHT
			if testContentHeight < 1 {
				testContentHeight = 1
			}

			testCurrentHeight := 0
			testEndIndex := tryBegin

			for i := tryBegin; i < len(nodes); i++ {
				nodeHeight := domLayout.GetNodeRenderedHeight(nodes[i])
				if testCurrentHeight+nodeHeight > testContentHeight {
					break
				}
				testCurrentHeight += nodeHeight
				testEndIndex = i + 1
			}

			testHasItemsBelow := testEndIndex < len(nodes)
			if !testHasItemsBelow && testCurrentHeight < testAvailableHeight {
				for i := testEndIndex; i < len(nodes); i++ {
					nodeHeight := domLayout.GetNodeRenderedHeight(nodes[i])
					if testCurrentHeight+nodeHeight > testAvailableHeight {
						break
					}
					testCurrentHeight += nodeHeight
					testEndIndex = i + 1
				}
			}

			if selectedIndex >= tryBegin && selectedIndex < testEndIndex {
				beginIndex = tryBegin
				endIndex = testEndIndex
				hasItemsAbove = testHasItemsAbove
				hasItemsBelow = testEndIndex < len(nodes)
				break
			}
		}
	}

	return SliceVerticalResult{
		BeginIndex:          beginIndex,
		EndIndex:            endIndex,
		ShowTopIndicator:    hasItemsAbove,
		ShowBottomIndicator: hasItemsBelow,
		ItemsAbove:          beginIndex,
		ItemsBelow:          len(nodes) - endIndex,
	}
}
