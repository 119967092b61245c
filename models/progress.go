package models

import (
	"time"
)

// LessonProgress records how far a student got with one lesson.
// Lessons are keyed by their path relative to the unit root so progress
// survives moving the unit root.
type LessonProgress struct {
	ID            int64      `json:"id"`
	LessonPath    string     `json:"lesson_path"`
	OpenCount     int        `json:"open_count"`
	LastOpened    time.Time  `json:"last_opened"`
	Completed     bool       `json:"completed"`
	CompletedTime *time.Time `json:"completed_time"`
}

type LessonProgressOptional struct {
	ID            *int64      `json:"id"`
	LessonPath    *string     `json:"lesson_path"`
	OpenCount     *int        `json:"open_count"`
	LastOpened    *time.Time  `json:"last_opened"`
	Completed     *bool       `json:"completed"`
	CompletedTime **time.Time `json:"completed_time"`
}

func (c *LessonProgress) Update(optional *LessonProgressOptional) {
	if optional == nil {
		return
	}
	if optional.ID != nil {
		c.ID = *optional.ID
	}
	if optional.LessonPath != nil {
		c.LessonPath = *optional.LessonPath
	}
	if optional.OpenCount != nil {
		c.OpenCount = *optional.OpenCount
	}
	if optional.LastOpened != nil {
		c.LastOpened = *optional.LastOpened
	}
	if optional.Completed != nil {
		c.Completed = *optional.Completed
	}
	if optional.CompletedTime != nil {
		c.CompletedTime = *optional.CompletedTime
	}
}

// Config is the persisted application state, not user preferences.
type Config struct {
	StorageType string `json:"storage_type"`
	ServerAddr  string `json:"server_addr"`
	ServerToken string `json:"server_token"`
	RunningPID  int    `json:"running_pid"`
	LastLesson  string `json:"last_lesson"`
}
