package models

type InputState struct {
	Value          string
	Focused        bool
	CursorPosition int
}

func (c *InputState) Reset() {
	c.Value = ""
	c.CursorPosition = 0
}

// MatchText is a fragment of a title with search-match highlighting.
type MatchText struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

type LessonView struct {
	Data     *Lesson
	Progress *LessonProgress

	MatchTexts []MatchText
}

type CourseView struct {
	Data      *Course
	Lessons   []*LessonView
	Collapsed bool
}

type CollectionView struct {
	Data    *Collection
	Courses []*CourseView
}

func (c *CourseView) CompletedCount() int {
	var n int
	for _, lesson := range c.Lessons {
		if lesson.Progress != nil && lesson.Progress.Completed {
			n++
		}
	}
	return n
}
