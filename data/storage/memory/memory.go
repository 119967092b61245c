package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

// Store is an in-memory LessonProgressService, mainly for tests.
type Store struct {
	mu      sync.RWMutex
	records []models.LessonProgress
	nextID  int64
}

func NewLessonProgressService() storage.LessonProgressService {
	return &Store{nextID: 1}
}

func (s *Store) List(options storage.LessonProgressListOptions) ([]models.LessonProgress, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.LessonProgress, 0, len(s.records))
	for _, record := range s.records {
		if options.Filter != "" {
			if !strings.Contains(strings.ToLower(record.LessonPath), strings.ToLower(options.Filter)) {
				continue
			}
		}
		if options.OnlyCompleted && !record.Completed {
			continue
		}
		records = append(records, record)
	}

	total := int64(len(records))

	if options.Offset > 0 {
		if options.Offset >= len(records) {
			records = nil
		} else {
			records = records[options.Offset:]
		}
	}
	if options.Limit > 0 && options.Limit < len(records) {
		records = records[:options.Limit]
	}

	return records, total, nil
}

func (s *Store) Get(lessonPath string) (*models.LessonProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.LessonPath == lessonPath {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Store) Add(progress models.LessonProgress) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if progress.LastOpened.IsZero() {
		progress.LastOpened = time.Now()
	}
	progress.ID = s.nextID
	s.nextID++
	s.records = append(s.records, progress)
	return progress.ID, nil
}

func (s *Store) Update(id int64, update models.LessonProgressOptional) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Update(&update)
			return nil
		}
	}
	return fmt.Errorf("lesson progress with id %d not found", id)
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lesson progress with id %d not found", id)
}
