package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

type LessonProgressSQLiteStore struct {
	*SQLiteStore
}

func New(filePath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) createTables() error {
	createProgressTable := `
	CREATE TABLE IF NOT EXISTS lesson_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lesson_path TEXT NOT NULL UNIQUE,
		open_count INTEGER NOT NULL DEFAULT 0,
		last_opened DATETIME,
		completed BOOLEAN NOT NULL DEFAULT 0,
		completed_time DATETIME
	);`

	_, err := s.db.Exec(createProgressTable)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func NewLessonProgressService(filePath string) (storage.LessonProgressService, error) {
	store, err := New(filePath)
	if err != nil {
		return nil, err
	}
	return &LessonProgressSQLiteStore{SQLiteStore: store}, nil
}

func (s *LessonProgressSQLiteStore) List(options storage.LessonProgressListOptions) ([]models.LessonProgress, int64, error) {
	var whereClause []string
	var args []interface{}

	if options.Filter != "" {
		whereClause = append(whereClause, "lesson_path LIKE ?")
		args = append(args, "%"+options.Filter+"%")
	}
	if options.OnlyCompleted {
		whereClause = append(whereClause, "completed = 1")
	}

	where := ""
	if len(whereClause) > 0 {
		where = "WHERE " + strings.Join(whereClause, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM lesson_progress %s", where)
	var total int64
	if err := s.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := "ORDER BY id ASC"
	if options.SortBy != "" {
		direction := "ASC"
		if options.SortOrder == "desc" {
			direction = "DESC"
		}
		orderBy = fmt.Sprintf("ORDER BY %s %s", options.SortBy, direction)
	}

	limit := ""
	if options.Limit > 0 {
		limit = fmt.Sprintf("LIMIT %d", options.Limit)
		if options.Offset > 0 {
			limit += fmt.Sprintf(" OFFSET %d", options.Offset)
		}
	}

	query := fmt.Sprintf("SELECT id, lesson_path, open_count, last_opened, completed, completed_time FROM lesson_progress %s %s %s",
		where, orderBy, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []models.LessonProgress
	for rows.Next() {
		record, err := scanProgress(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (s *LessonProgressSQLiteStore) Get(lessonPath string) (*models.LessonProgress, error) {
	rows, err := s.db.Query("SELECT id, lesson_path, open_count, last_opened, completed, completed_time FROM lesson_progress WHERE lesson_path = ?", lessonPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanProgress(rows)
}

func (s *LessonProgressSQLiteStore) Add(progress models.LessonProgress) (int64, error) {
	if progress.LastOpened.IsZero() {
		progress.LastOpened = time.Now()
	}

	var completedTimeStr interface{}
	if progress.CompletedTime != nil {
		completedTimeStr = formatTime(*progress.CompletedTime)
	}

	query := `INSERT INTO lesson_progress (lesson_path, open_count, last_opened, completed, completed_time)
			  VALUES (?, ?, ?, ?, ?)`
	result, err := s.db.Exec(query, progress.LessonPath, progress.OpenCount,
		formatTime(progress.LastOpened), progress.Completed, completedTimeStr)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (s *LessonProgressSQLiteStore) Update(id int64, update models.LessonProgressOptional) error {
	var setParts []string
	var args []interface{}

	if update.LessonPath != nil {
		setParts = append(setParts, "lesson_path = ?")
		args = append(args, *update.LessonPath)
	}
	if update.OpenCount != nil {
		setParts = append(setParts, "open_count = ?")
		args = append(args, *update.OpenCount)
	}
	if update.LastOpened != nil {
		setParts = append(setParts, "last_opened = ?")
		args = append(args, formatTime(*update.LastOpened))
	}
	if update.Completed != nil {
		setParts = append(setParts, "completed = ?")
		args = append(args, *update.Completed)
	}
	if update.CompletedTime != nil {
		setParts = append(setParts, "completed_time = ?")
		if *update.CompletedTime != nil {
			args = append(args, formatTime(**update.CompletedTime))
		} else {
			args = append(args, nil)
		}
	}

	if len(setParts) == 0 {
		return nil // Nothing to update
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE lesson_progress SET %s WHERE id = ?", strings.Join(setParts, ", "))

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson progress with id %d not found", id)
	}

	return nil
}

func (s *LessonProgressSQLiteStore) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM lesson_progress WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson progress with id %d not found", id)
	}

	return nil
}

func scanProgress(rows *sql.Rows) (*models.LessonProgress, error) {
	var record models.LessonProgress
	var lastOpened *string
	var completedTime *string

	if err := rows.Scan(&record.ID, &record.LessonPath, &record.OpenCount, &lastOpened, &record.Completed, &completedTime); err != nil {
		return nil, err
	}

	var err error
	if lastOpened != nil {
		if record.LastOpened, err = tryParseTime(*lastOpened); err != nil {
			return nil, err
		}
	}
	if completedTime != nil {
		t, err := tryParseTime(*completedTime)
		if err != nil {
			return nil, err
		}
		record.CompletedTime = &t
	}

	return &record, nil
}
