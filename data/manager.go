package data

import (
	"path/filepath"
	"time"

	"github.com/schulstick/portal/data/scanner"
	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

// CatalogManager joins the scanned lesson catalog with the progress
// store and builds the view tree the UI renders.
type CatalogManager struct {
	UnitRoot        string
	ProgressService storage.LessonProgressService

	Catalog     *scanner.Catalog
	Collections []*models.CollectionView
}

func NewCatalogManager(unitRoot string, progressService storage.LessonProgressService) *CatalogManager {
	return &CatalogManager{
		UnitRoot:        unitRoot,
		ProgressService: progressService,
	}
}

func (m *CatalogManager) Init() error {
	catalog, err := scanner.Scan(m.UnitRoot)
	if err != nil {
		return err
	}
	m.Catalog = catalog

	progress, _, err := m.ProgressService.List(storage.LessonProgressListOptions{})
	if err != nil {
		return err
	}
	byPath := make(map[string]*models.LessonProgress, len(progress))
	for i := range progress {
		byPath[progress[i].LessonPath] = &progress[i]
	}

	m.Collections = m.Collections[:0]
	for _, collection := range catalog.Collections {
		collectionView := &models.CollectionView{
			Data: collection,
		}
		for _, course := range catalog.CoursesByCollection(collection.Name) {
			courseView := &models.CourseView{
				Data: course,
			}
			for _, lesson := range course.Lessons {
				courseView.Lessons = append(courseView.Lessons, &models.LessonView{
					Data:     lesson,
					Progress: byPath[m.lessonKey(lesson)],
				})
			}
			collectionView.Courses = append(collectionView.Courses, courseView)
		}
		m.Collections = append(m.Collections, collectionView)
	}
	return nil
}

// Rescan rebuilds the catalog from disk, keeping progress attached.
func (m *CatalogManager) Rescan() error {
	return m.Init()
}

// lessonKey is the progress key: the lesson path relative to the unit
// root, so records survive moving the root.
func (m *CatalogManager) lessonKey(lesson *models.Lesson) string {
	rel, err := filepath.Rel(m.UnitRoot, lesson.Path)
	if err != nil {
		return lesson.Path
	}
	return filepath.ToSlash(rel)
}

func (m *CatalogManager) Warnings() []scanner.Warning {
	if m.Catalog == nil {
		return nil
	}
	return m.Catalog.Warnings
}

// MarkOpened bumps the open count for a lesson, creating the progress
// record on first open.
func (m *CatalogManager) MarkOpened(view *models.LessonView) error {
	now := time.Now()
	if view.Progress == nil {
		record := models.LessonProgress{
			LessonPath: m.lessonKey(view.Data),
			OpenCount:  1,
			LastOpened: now,
		}
		id, err := m.ProgressService.Add(record)
		if err != nil {
			return err
		}
		record.ID = id
		view.Progress = &record
		return nil
	}

	openCount := view.Progress.OpenCount + 1
	err := m.ProgressService.Update(view.Progress.ID, models.LessonProgressOptional{
		OpenCount:  &openCount,
		LastOpened: &now,
	})
	if err != nil {
		return err
	}
	view.Progress.OpenCount = openCount
	view.Progress.LastOpened = now
	return nil
}

// ToggleCompleted flips the completed flag, stamping the completion
// time when it turns on.
func (m *CatalogManager) ToggleCompleted(view *models.LessonView) error {
	if view.Progress == nil {
		now := time.Now()
		record := models.LessonProgress{
			LessonPath:    m.lessonKey(view.Data),
			Completed:     true,
			CompletedTime: &now,
		}
		id, err := m.ProgressService.Add(record)
		if err != nil {
			return err
		}
		record.ID = id
		view.Progress = &record
		return nil
	}

	completed := !view.Progress.Completed
	var completedTime *time.Time
	if completed {
		now := time.Now()
		completedTime = &now
	}
	err := m.ProgressService.Update(view.Progress.ID, models.LessonProgressOptional{
		Completed:     &completed,
		CompletedTime: &completedTime,
	})
	if err != nil {
		return err
	}
	view.Progress.Completed = completed
	view.Progress.CompletedTime = completedTime
	return nil
}

// FindLesson locates a lesson view by its progress key.
func (m *CatalogManager) FindLesson(key string) *models.LessonView {
	for _, collection := range m.Collections {
		for _, course := range collection.Courses {
			for _, lesson := range course.Lessons {
				if m.lessonKey(lesson.Data) == key {
					return lesson
				}
			}
		}
	}
	return nil
}

// LessonKey exposes the progress key for a lesson.
func (m *CatalogManager) LessonKey(lesson *models.Lesson) string {
	return m.lessonKey(lesson)
}
