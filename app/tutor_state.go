package app

import (
	"os"
	"strings"

	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/vision"
)

type TutorMode int

const (
	TutorMode_Default TutorMode = iota
	TutorMode_LaunchConfirm
	TutorMode_ExternalConfirm
	TutorMode_VisionPrompt
)

type TutorState struct {
	LessonKey string
	Lesson    *models.LessonView

	Steps     []string
	StepIndex int
	LoadErr   string

	// rendered markdown cache, invalidated on step or width change
	renderedStep  int
	renderedWidth int
	rendered      string

	Mode           TutorMode
	Collapsed      bool
	ConfirmButton  int
	PendingURL     string
	DockOverride   models.DockPosition
	VisionInput    models.InputState
	VisionBusy     bool
	VisionHint     *vision.Hint
	VisionErr      string
	LastVisionHint *vision.Hint
}

// EnterLesson loads the lesson content and resets the tutor state.
func (t *TutorState) EnterLesson(key string, lesson *models.LessonView) {
	*t = TutorState{
		LessonKey: key,
		Lesson:    lesson,
	}
	if lesson == nil {
		t.LoadErr = "lesson not found"
		return
	}
	data, err := os.ReadFile(lesson.Data.ContentPath)
	if err != nil {
		t.LoadErr = "cannot read lesson: " + err.Error()
		return
	}
	t.Steps = SplitSteps(string(data))
}

func (t *TutorState) NextStep() {
	if t.StepIndex < len(t.Steps)-1 {
		t.StepIndex++
	}
}

func (t *TutorState) PrevStep() {
	if t.StepIndex > 0 {
		t.StepIndex--
	}
}

func (t *TutorState) CurrentStep() string {
	if t.StepIndex < 0 || t.StepIndex >= len(t.Steps) {
		return ""
	}
	return t.Steps[t.StepIndex]
}

// Dock returns the effective dock position: a session override wins
// over the lesson's screen hint.
func (t *TutorState) Dock() models.DockPosition {
	if t.DockOverride != "" {
		return t.DockOverride
	}
	if t.Lesson != nil {
		return t.Lesson.Data.Hint().Position
	}
	return models.DockPosition_Right
}

var dockCycle = []models.DockPosition{
	models.DockPosition_Right,
	models.DockPosition_Bottom,
	models.DockPosition_Left,
	models.DockPosition_Top,
}

func (t *TutorState) CycleDock() {
	current := t.Dock()
	for i, pos := range dockCycle {
		if pos == current {
			t.DockOverride = dockCycle[(i+1)%len(dockCycle)]
			return
		}
	}
	t.DockOverride = dockCycle[0]
}

// SplitSteps splits lesson markdown into tutor steps at second-level
// headings. Content before the first heading becomes the intro step.
// A lesson without any "## " headings is a single step.
func SplitSteps(content string) []string {
	lines := strings.Split(content, "\n")
	var steps []string
	var current []string
	flush := func() {
		step := strings.TrimSpace(strings.Join(current, "\n"))
		if step != "" {
			steps = append(steps, step)
		}
		current = current[:0]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
		}
		current = append(current, line)
	}
	flush()
	if len(steps) == 0 {
		steps = []string{""}
	}
	return steps
}
