package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schulstick/portal/data/storage/memory"
	"github.com/schulstick/portal/models"
)

func writeUnitTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func newTestManager(t *testing.T) *CatalogManager {
	t.Helper()
	root := t.TempDir()
	writeUnitTree(t, root, map[string]string{
		"multimedia/gimp/course.yml":                "title: GIMP\n",
		"multimedia/gimp/first-steps/lesson.yml":    "title: First steps\nskill_level: 1\n",
		"multimedia/gimp/first-steps/content.md":    "# First steps\n",
		"multimedia/gimp/layers/lesson.yml":         "title: Layers\n",
		"multimedia/gimp/layers/content.md":         "# Layers\n",
		"office/writer/course.yml":                  "title: Writer\n",
		"office/writer/first-letter/lesson.yml":     "title: A first letter\n",
		"office/writer/first-letter/content.md":     "# Letter\n",
	})

	manager := NewCatalogManager(root, memory.NewLessonProgressService())
	if err := manager.Init(); err != nil {
		t.Fatal(err)
	}
	return manager
}

func findLessonView(m *CatalogManager, title string) *models.LessonView {
	for _, collection := range m.Collections {
		for _, course := range collection.Courses {
			for _, lesson := range course.Lessons {
				if lesson.Data.Title == title {
					return lesson
				}
			}
		}
	}
	return nil
}

func TestManagerInitBuildsViewTree(t *testing.T) {
	manager := newTestManager(t)

	if len(manager.Collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(manager.Collections))
	}
	lesson := findLessonView(manager, "First steps")
	if lesson == nil {
		t.Fatal("lesson First steps not found")
	}
	if lesson.Progress != nil {
		t.Error("fresh lesson should have no progress")
	}
}

func TestMarkOpenedCreatesAndBumps(t *testing.T) {
	manager := newTestManager(t)
	lesson := findLessonView(manager, "First steps")

	if err := manager.MarkOpened(lesson); err != nil {
		t.Fatal(err)
	}
	if lesson.Progress == nil || lesson.Progress.OpenCount != 1 {
		t.Fatalf("expected open count 1, got %+v", lesson.Progress)
	}
	if err := manager.MarkOpened(lesson); err != nil {
		t.Fatal(err)
	}
	if lesson.Progress.OpenCount != 2 {
		t.Errorf("expected open count 2, got %d", lesson.Progress.OpenCount)
	}

	// the record is keyed relative to the unit root
	stored, err := manager.ProgressService.Get("multimedia/gimp/first-steps")
	if err != nil {
		t.Fatal(err)
	}
	if stored == nil {
		t.Fatal("expected stored record keyed by relative path")
	}
	if stored.OpenCount != 2 {
		t.Errorf("expected stored open count 2, got %d", stored.OpenCount)
	}
}

func TestToggleCompleted(t *testing.T) {
	manager := newTestManager(t)
	lesson := findLessonView(manager, "Layers")

	if err := manager.ToggleCompleted(lesson); err != nil {
		t.Fatal(err)
	}
	if lesson.Progress == nil || !lesson.Progress.Completed {
		t.Fatal("expected lesson completed")
	}
	if lesson.Progress.CompletedTime == nil {
		t.Error("expected completed time set")
	}

	if err := manager.ToggleCompleted(lesson); err != nil {
		t.Fatal(err)
	}
	if lesson.Progress.Completed {
		t.Error("expected lesson un-completed")
	}
	if lesson.Progress.CompletedTime != nil {
		t.Error("expected completed time cleared")
	}
}

func TestProgressSurvivesRescan(t *testing.T) {
	manager := newTestManager(t)
	lesson := findLessonView(manager, "A first letter")
	if err := manager.ToggleCompleted(lesson); err != nil {
		t.Fatal(err)
	}

	if err := manager.Rescan(); err != nil {
		t.Fatal(err)
	}
	lesson = findLessonView(manager, "A first letter")
	if lesson.Progress == nil || !lesson.Progress.Completed {
		t.Error("expected progress re-attached after rescan")
	}
}

func TestFindLesson(t *testing.T) {
	manager := newTestManager(t)

	lesson := manager.FindLesson("multimedia/gimp/layers")
	if lesson == nil || lesson.Data.Title != "Layers" {
		t.Fatalf("unexpected lesson %+v", lesson)
	}
	if manager.FindLesson("no/such/lesson") != nil {
		t.Error("expected nil for unknown key")
	}
}
