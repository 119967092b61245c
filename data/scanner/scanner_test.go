package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schulstick/portal/models"
)

// writeFiles creates a lesson directory tree under root from a map of
// relative paths to contents.
func writeFiles(t *testing.T, root string, files map[string]string) {
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

func findLesson(c *Catalog, title string) *models.Lesson {
	for _, lesson := range c.Lessons() {
		if lesson.Title == title {
			return lesson
		}
	}
	return nil
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestContentMdAlwaysWins(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/layers/content.md": "# Layers",
		"oer/gimp/layers/aaa.md":     "# Not this one",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lessons := catalog.Lessons()
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if got := filepath.Base(lessons[0].ContentPath); got != "content.md" {
		t.Errorf("expected content.md, got %s", got)
	}
	if len(catalog.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", catalog.Warnings)
	}
}

func TestSingleMarkdownFallbackWithoutWarning(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/layers/intro.md": "# Intro",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lessons := catalog.Lessons()
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if got := filepath.Base(lessons[0].ContentPath); got != "intro.md" {
		t.Errorf("expected intro.md, got %s", got)
	}
	if len(catalog.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", catalog.Warnings)
	}
}

func TestMultipleMarkdownFallsBackToFirstWithWarning(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/layers/b.md": "# B",
		"oer/gimp/layers/a.md": "# A",
		"oer/gimp/layers/c.md": "# C",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lessons := catalog.Lessons()
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if got := filepath.Base(lessons[0].ContentPath); got != "a.md" {
		t.Errorf("expected lexically first a.md, got %s", got)
	}
	if len(catalog.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", catalog.Warnings)
	}
}

func TestNoMarkdownExcludesLessonWithWarning(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/layers/notes.txt":  "nothing here",
		"oer/gimp/shapes/content.md": "# Shapes",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lessons := catalog.Lessons()
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	if lessons[0].Title != "gimp - shapes" {
		t.Errorf("unexpected surviving lesson: %s", lessons[0].Title)
	}
	if len(catalog.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", catalog.Warnings)
	}
}

func TestLessonMetadata(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/inkscape/paths/lesson.yml": `
title: Working with Paths
tags: [vector, drawing]
min_grade: 5
skill_level: 3
subjects: [computer_science]
markdown_file: paths.md
screen_hint:
  position: left
  mode: docked
  preferred_width: 480
program_launch_info:
  bin_name: inkscape
  args: ["--new"]
`,
		"oer/inkscape/paths/paths.md": "# Paths",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lesson := findLesson(catalog, "Working with Paths")
	if lesson == nil {
		t.Fatal("lesson not found")
	}
	if got := filepath.Base(lesson.ContentPath); got != "paths.md" {
		t.Errorf("expected paths.md, got %s", got)
	}
	if lesson.Metadata.MinGrade != 5 {
		t.Errorf("expected min_grade 5, got %d", lesson.Metadata.MinGrade)
	}
	if lesson.Metadata.ScreenHint == nil || lesson.Metadata.ScreenHint.PreferredWidth != 480 {
		t.Errorf("screen hint not parsed: %+v", lesson.Metadata.ScreenHint)
	}
	if lesson.Metadata.ProgramLaunchInfo == nil || lesson.Metadata.ProgramLaunchInfo.BinName != "inkscape" {
		t.Errorf("program launch info not parsed: %+v", lesson.Metadata.ProgramLaunchInfo)
	}
}

func TestMetadataMarkdownFileMissingFallsBack(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/inkscape/paths/lesson.yml": "title: Paths\nmarkdown_file: gone.md\n",
		"oer/inkscape/paths/content.md": "# Paths",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lesson := findLesson(catalog, "Paths")
	if lesson == nil {
		t.Fatal("lesson not found")
	}
	if got := filepath.Base(lesson.ContentPath); got != "content.md" {
		t.Errorf("expected fallback to content.md, got %s", got)
	}
	if len(catalog.Warnings) != 1 {
		t.Errorf("expected 1 warning for missing markdown_file, got %v", catalog.Warnings)
	}
}

func TestMalformedLessonMetadataSkipsLesson(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/broken/lesson.yml": "title: [unclosed",
		"oer/gimp/broken/content.md": "# Broken",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Lessons()) != 0 {
		t.Errorf("expected lesson to be skipped, got %d", len(catalog.Lessons()))
	}
	if len(catalog.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", catalog.Warnings)
	}
}

func TestMalformedCourseMetadataFallsBackToDirName(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/course.yml":        "title: [unclosed",
		"oer/gimp/layers/content.md": "# Layers",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(catalog.Courses))
	}
	if catalog.Courses[0].Title != "gimp" {
		t.Errorf("expected fallback title gimp, got %s", catalog.Courses[0].Title)
	}
	if len(catalog.Courses[0].Lessons) != 1 {
		t.Errorf("expected lessons to survive course metadata failure")
	}
}

func TestCourseLevelMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/tips/shortcuts.md": "# Shortcuts",
		"oer/tips/printing.md":  "# Printing",
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	lessons := catalog.Lessons()
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons from loose markdown, got %d", len(lessons))
	}
	if lessons[0].Title != "printing" || lessons[1].Title != "shortcuts" {
		t.Errorf("unexpected titles: %s, %s", lessons[0].Title, lessons[1].Title)
	}
}

func TestCollectionsAndFilters(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"oer/gimp/layers/content.md":    "# Layers",
		"oer/gimp/layers/lesson.yml":    "title: Layers\nmin_grade: 3\nsubjects: [arts]\n",
		"drafts/scratch/loops/loops.md": "# Loops",
		"drafts/scratch/loops/lesson.yml": `
title: Loops
min_grade: 7
subjects: [computer_science]
`,
	})

	catalog, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Collections) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(catalog.Collections))
	}
	if got := len(catalog.CoursesByCollection("oer")); got != 1 {
		t.Errorf("expected 1 course in oer, got %d", got)
	}
	if got := catalog.FilterBySubject("arts"); len(got) != 1 || got[0].Title != "Layers" {
		t.Errorf("subject filter failed: %v", got)
	}
	if got := catalog.FilterByGrade(5); len(got) != 1 || got[0].Title != "Layers" {
		t.Errorf("grade filter failed: %v", got)
	}
}
