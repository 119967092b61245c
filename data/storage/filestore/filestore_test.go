package filestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

func newTestStore(t *testing.T) storage.LessonProgressService {
	t.Helper()
	service, err := NewLessonProgressService(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	return service
}

func TestAddGetUpdate(t *testing.T) {
	service := newTestStore(t)

	id, err := service.Add(models.LessonProgress{
		LessonPath: "multimedia/gimp/first-steps",
		OpenCount:  1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}

	record, err := service.Get("multimedia/gimp/first-steps")
	if err != nil {
		t.Fatal(err)
	}
	if record == nil || record.OpenCount != 1 {
		t.Fatalf("unexpected record %+v", record)
	}

	completed := true
	now := time.Now()
	completedTime := &now
	err = service.Update(id, models.LessonProgressOptional{
		Completed:     &completed,
		CompletedTime: &completedTime,
	})
	if err != nil {
		t.Fatal(err)
	}

	record, err = service.Get("multimedia/gimp/first-steps")
	if err != nil {
		t.Fatal(err)
	}
	if !record.Completed || record.CompletedTime == nil {
		t.Errorf("update not applied: %+v", record)
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	service := newTestStore(t)
	record, err := service.Get("no/such/lesson")
	if err != nil {
		t.Fatal(err)
	}
	if record != nil {
		t.Errorf("expected nil, got %+v", record)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "progress.json")
	service, err := NewLessonProgressService(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := service.Add(models.LessonProgress{LessonPath: "a/b/c"}); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewLessonProgressService(file)
	if err != nil {
		t.Fatal(err)
	}
	record, err := reopened.Get("a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	if record == nil {
		t.Fatal("expected record after reopen")
	}

	// ids keep incrementing after reopen
	id, err := reopened.Add(models.LessonProgress{LessonPath: "d/e/f"})
	if err != nil {
		t.Fatal(err)
	}
	if id != 2 {
		t.Errorf("expected id 2 after reopen, got %d", id)
	}
}

func TestListFilterAndCompleted(t *testing.T) {
	service := newTestStore(t)
	completed := models.LessonProgress{LessonPath: "multimedia/gimp/layers", Completed: true}
	if _, err := service.Add(completed); err != nil {
		t.Fatal(err)
	}
	if _, err := service.Add(models.LessonProgress{LessonPath: "office/writer/first-letter"}); err != nil {
		t.Fatal(err)
	}

	records, total, err := service.List(storage.LessonProgressListOptions{Filter: "gimp"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(records) != 1 {
		t.Fatalf("expected 1 match, got %d", total)
	}

	records, _, err = service.List(storage.LessonProgressListOptions{OnlyCompleted: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].LessonPath != "multimedia/gimp/layers" {
		t.Errorf("unexpected completed records %+v", records)
	}
}

func TestDelete(t *testing.T) {
	service := newTestStore(t)
	id, err := service.Add(models.LessonProgress{LessonPath: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if err := service.Delete(id); err != nil {
		t.Fatal(err)
	}
	if err := service.Delete(id); err == nil {
		t.Error("expected error for double delete")
	}
}
