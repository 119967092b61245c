package run

import (
	"strings"
	"testing"

	"github.com/schulstick/portal/models"
)

func makeTestCollections() []*models.CollectionView {
	return []*models.CollectionView{
		{
			Data: &models.Collection{Name: "multimedia", Title: "Multimedia"},
			Courses: []*models.CourseView{
				{
					Data: &models.Course{Title: "GIMP"},
					Lessons: []*models.LessonView{
						{
							Data:     &models.Lesson{Title: "First steps", Path: "/units/multimedia/gimp/first-steps", ContentPath: "/units/multimedia/gimp/first-steps/content.md"},
							Progress: &models.LessonProgress{Completed: true},
						},
						{
							Data: &models.Lesson{Title: "Layers", Path: "/units/multimedia/gimp/layers", ContentPath: "/units/multimedia/gimp/layers/content.md"},
						},
					},
				},
			},
		},
	}
}

func TestRenderToString(t *testing.T) {
	out := RenderToString(makeTestCollections(), false, false, models.DefaultPortalConfig())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "Multimedia" {
		t.Errorf("unexpected collection line %q", lines[0])
	}
	if lines[1] != "  └─▾ GIMP (1/2)" {
		t.Errorf("unexpected course line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "    ├─✓ First steps") {
		t.Errorf("unexpected first lesson line %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "    └─• Layers") {
		t.Errorf("unexpected second lesson line %q", lines[3])
	}
}

func TestKeepLessons(t *testing.T) {
	collections := makeTestCollections()
	layers := collections[0].Courses[0].Lessons[1].Data

	kept := keepLessons(collections, []*models.Lesson{layers})
	if len(kept) != 1 || len(kept[0].Courses) != 1 {
		t.Fatalf("expected one collection with one course, got %+v", kept)
	}
	lessons := kept[0].Courses[0].Lessons
	if len(lessons) != 1 || lessons[0].Data.Title != "Layers" {
		t.Errorf("expected only Layers, got %+v", lessons)
	}

	empty := keepLessons(collections, nil)
	if len(empty) != 0 {
		t.Errorf("expected no collections, got %d", len(empty))
	}
}

func TestRenderToStringShowURL(t *testing.T) {
	conf := models.DefaultPortalConfig()
	conf.UnitRootPath = "/units"
	out := RenderToString(makeTestCollections(), true, false, conf)

	if !strings.Contains(out, "http://localhost:3000/liascript/index.html?http://localhost:3000/multimedia/gimp/layers/content.md") {
		t.Errorf("expected tutorial URL in output:\n%s", out)
	}
}
