package tree

// BuildTreePrefix generates tree connector prefix for hierarchical display
// depth: the depth level of the current item (0 for top-level)
// ancestorIsLast: slice indicating whether each ancestor level is the last child
// Returns a string with appropriate tree connectors (│, ├─, └─) and spacing
func BuildTreePrefix(depth int, ancestorIsLast []bool) string {
	if depth == 0 {
		return ""
	}

	treePrefix := ""
	if depth == 1 {
		treePrefix = "  "
	} else {
		for d := 0; d < depth-1; d++ {
			if d < len(ancestorIsLast) && !ancestorIsLast[d] {
				treePrefix += "  │ "
			} else {
				if d == depth-2 {
					treePrefix += "    "
				} else {
					treePrefix += "  "
				}
			}
		}
	}

	if len(ancestorIsLast) >= depth && ancestorIsLast[depth-1] {
		treePrefix += "└─"
	} else {
		treePrefix += "├─"
	}

	return treePrefix
}
