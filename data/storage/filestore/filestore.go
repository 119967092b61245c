package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

// FileStore keeps lesson progress in a single JSON file.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	data     *FileData
}

type LessonProgressFileStore struct {
	*FileStore
}

type FileData struct {
	Progress []models.LessonProgress `json:"progress"`
	NextID   int64                   `json:"next_id"`
}

func New(filePath string) (*FileStore, error) {
	fs := &FileStore{
		filePath: filePath,
		data: &FileData{
			Progress: []models.LessonProgress{},
			NextID:   1,
		},
	}

	// Try to load existing data
	if err := fs.load(); err != nil {
		// If file doesn't exist, that's ok, we'll create it on first save
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load file: %w", err)
		}
	}

	return fs, nil
}

func NewLessonProgressService(filePath string) (storage.LessonProgressService, error) {
	fs, err := New(filePath)
	if err != nil {
		return nil, err
	}
	return &LessonProgressFileStore{FileStore: fs}, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, fs.data)
}

func (fs *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(fs.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fs.filePath, data, 0644)
}

func (fs *FileStore) nextID() int64 {
	id := fs.data.NextID
	fs.data.NextID++
	return id
}

func (s *LessonProgressFileStore) List(options storage.LessonProgressListOptions) ([]models.LessonProgress, int64, error) {
	fs := s.FileStore
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	records := make([]models.LessonProgress, 0, len(fs.data.Progress))
	for _, record := range fs.data.Progress {
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

	if options.SortBy != "" {
		sort.Slice(records, func(i, j int) bool {
			var less bool
			switch options.SortBy {
			case "last_opened":
				less = records[i].LastOpened.Before(records[j].LastOpened)
			case "open_count":
				less = records[i].OpenCount < records[j].OpenCount
			default:
				less = records[i].ID < records[j].ID
			}
			if options.SortOrder == "desc" {
				return !less
			}
			return less
		})
	}

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

func (s *LessonProgressFileStore) Get(lessonPath string) (*models.LessonProgress, error) {
	fs := s.FileStore
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	for _, record := range fs.data.Progress {
		if record.LessonPath == lessonPath {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (s *LessonProgressFileStore) Add(progress models.LessonProgress) (int64, error) {
	fs := s.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if progress.LastOpened.IsZero() {
		progress.LastOpened = time.Now()
	}
	progress.ID = fs.nextID()
	fs.data.Progress = append(fs.data.Progress, progress)

	if err := fs.save(); err != nil {
		return 0, err
	}
	return progress.ID, nil
}

func (s *LessonProgressFileStore) Update(id int64, update models.LessonProgressOptional) error {
	fs := s.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.data.Progress {
		if fs.data.Progress[i].ID == id {
			fs.data.Progress[i].Update(&update)
			return fs.save()
		}
	}
	return fmt.Errorf("lesson progress with id %d not found", id)
}

func (s *LessonProgressFileStore) Delete(id int64) error {
	fs := s.FileStore
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.data.Progress {
		if fs.data.Progress[i].ID == id {
			fs.data.Progress = append(fs.data.Progress[:i], fs.data.Progress[i+1:]...)
			return fs.save()
		}
	}
	return fmt.Errorf("lesson progress with id %d not found", id)
}
