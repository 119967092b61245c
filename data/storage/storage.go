package storage

import (
	"github.com/schulstick/portal/models"
)

type LessonProgressListOptions struct {
	Filter        string
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
	OnlyCompleted bool
}

// LessonProgressService persists per-lesson progress records, keyed by
// the lesson path relative to the unit root.
type LessonProgressService interface {
	List(options LessonProgressListOptions) ([]models.LessonProgress, int64, error)
	// Get returns nil when the lesson has no progress record yet.
	Get(lessonPath string) (*models.LessonProgress, error)
	Add(progress models.LessonProgress) (int64, error)
	Update(id int64, update models.LessonProgressOptional) error
	Delete(id int64) error
}
