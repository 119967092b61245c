package tree

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/schulstick/portal/models"
)

var strikethroughStyle = lipgloss.NewStyle().Strikethrough(true)

// RenderLesson renders one lesson line: bullet, title and skill stars.
// Completed lessons get a checkmark and optional strikethrough.
func RenderLesson(lesson *models.LessonView, renderStrikeThrough bool) string {
	bullet := "•"
	completed := lesson.Progress != nil && lesson.Progress.Completed
	if completed {
		bullet = "✓"
	}

	title := lesson.Data.Title
	if completed && renderStrikeThrough {
		title = strikethroughStyle.Render(title)
	}

	stars := SkillStars(lesson.Data.SkillLevel())
	if stars != "" {
		stars = " " + stars
	}

	var openIndicator string
	if lesson.Progress != nil && lesson.Progress.OpenCount > 0 && !completed {
		openIndicator = " (started)"
	}

	return bullet + " " + title + stars + openIndicator
}

// RenderCourse renders a course heading with its completion ratio.
func RenderCourse(course *models.CourseView) string {
	marker := "▾"
	if course.Collapsed {
		marker = "▸"
	}
	return fmt.Sprintf("%s %s (%d/%d)", marker, course.Data.Title, course.CompletedCount(), len(course.Lessons))
}

// SkillStars renders a skill level 1..5 as filled stars. Zero means
// unset and renders nothing.
func SkillStars(level int) string {
	if level <= 0 {
		return ""
	}
	if level > 5 {
		level = 5
	}
	return strings.Repeat("★", level) + strings.Repeat("☆", 5-level)
}
