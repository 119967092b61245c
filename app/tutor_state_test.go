package app

import (
	"testing"

	"github.com/schulstick/portal/models"
)

func TestSplitSteps(t *testing.T) {
	content := `# Title

Some intro text.

## Step one

Do the first thing.

## Step two

Do the second thing.
`
	steps := SplitSteps(content)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d: %q", len(steps), steps)
	}
	if steps[0] != "# Title\n\nSome intro text." {
		t.Errorf("unexpected intro step %q", steps[0])
	}
	if steps[1] != "## Step one\n\nDo the first thing." {
		t.Errorf("unexpected step %q", steps[1])
	}
}

func TestSplitStepsNoHeadings(t *testing.T) {
	steps := SplitSteps("just one page of text\n")
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
}

func TestSplitStepsEmpty(t *testing.T) {
	steps := SplitSteps("")
	if len(steps) != 1 {
		t.Fatalf("expected 1 step for empty content, got %d", len(steps))
	}
}

func TestStepNavigationClamps(t *testing.T) {
	tutor := TutorState{Steps: []string{"a", "b"}}
	tutor.PrevStep()
	if tutor.StepIndex != 0 {
		t.Errorf("expected clamp at 0, got %d", tutor.StepIndex)
	}
	tutor.NextStep()
	tutor.NextStep()
	if tutor.StepIndex != 1 {
		t.Errorf("expected clamp at last step, got %d", tutor.StepIndex)
	}
}

func TestDockCycle(t *testing.T) {
	tutor := TutorState{
		Lesson: &models.LessonView{Data: &models.Lesson{}},
	}
	if tutor.Dock() != models.DockPosition_Right {
		t.Fatalf("expected default dock right, got %s", tutor.Dock())
	}
	tutor.CycleDock()
	if tutor.Dock() != models.DockPosition_Bottom {
		t.Errorf("expected bottom after one cycle, got %s", tutor.Dock())
	}
	tutor.CycleDock()
	tutor.CycleDock()
	tutor.CycleDock()
	if tutor.Dock() != models.DockPosition_Right {
		t.Errorf("expected full cycle back to right, got %s", tutor.Dock())
	}
}

func TestDockHintFromLesson(t *testing.T) {
	tutor := TutorState{
		Lesson: &models.LessonView{Data: &models.Lesson{
			Metadata: &models.LessonMetadata{
				ScreenHint: &models.ScreenHint{Position: models.DockPosition_Left},
			},
		}},
	}
	if tutor.Dock() != models.DockPosition_Left {
		t.Errorf("expected lesson hint to win, got %s", tutor.Dock())
	}
}
