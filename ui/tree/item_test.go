package tree

import (
	"strings"
	"testing"

	"github.com/schulstick/portal/models"
)

func TestRenderLesson(t *testing.T) {
	lesson := &models.LessonView{
		Data: &models.Lesson{
			Title:    "First steps",
			Metadata: &models.LessonMetadata{SkillLevel: 2},
		},
	}

	line := RenderLesson(lesson, false)
	if !strings.HasPrefix(line, "• First steps") {
		t.Errorf("unexpected line %q", line)
	}
	if !strings.Contains(line, "★★☆☆☆") {
		t.Errorf("expected skill stars in %q", line)
	}
}

func TestRenderLessonCompleted(t *testing.T) {
	lesson := &models.LessonView{
		Data:     &models.Lesson{Title: "First steps"},
		Progress: &models.LessonProgress{Completed: true, OpenCount: 3},
	}

	line := RenderLesson(lesson, false)
	if !strings.HasPrefix(line, "✓ ") {
		t.Errorf("expected checkmark, got %q", line)
	}
	if strings.Contains(line, "(started)") {
		t.Errorf("completed lesson should not show started, got %q", line)
	}
}

func TestRenderLessonStarted(t *testing.T) {
	lesson := &models.LessonView{
		Data:     &models.Lesson{Title: "First steps"},
		Progress: &models.LessonProgress{OpenCount: 1},
	}

	line := RenderLesson(lesson, false)
	if !strings.Contains(line, "(started)") {
		t.Errorf("expected started indicator, got %q", line)
	}
}

func TestRenderCourse(t *testing.T) {
	course := &models.CourseView{
		Data: &models.Course{Title: "GIMP"},
		Lessons: []*models.LessonView{
			{Data: &models.Lesson{Title: "a"}, Progress: &models.LessonProgress{Completed: true}},
			{Data: &models.Lesson{Title: "b"}},
		},
	}

	line := RenderCourse(course)
	if line != "▾ GIMP (1/2)" {
		t.Errorf("unexpected course line %q", line)
	}

	course.Collapsed = true
	line = RenderCourse(course)
	if line != "▸ GIMP (1/2)" {
		t.Errorf("unexpected collapsed course line %q", line)
	}
}

func TestSkillStars(t *testing.T) {
	if got := SkillStars(0); got != "" {
		t.Errorf("level 0 should render nothing, got %q", got)
	}
	if got := SkillStars(5); got != "★★★★★" {
		t.Errorf("unexpected stars %q", got)
	}
	if got := SkillStars(7); got != "★★★★★" {
		t.Errorf("level above 5 should clamp, got %q", got)
	}
}
