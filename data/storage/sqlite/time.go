package sqlite

import (
	"strings"
	"time"
)

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// sqlite may hand back either "2006-01-02 15:04:05" or RFC3339-ish
// "2006-01-02T15:04:05Z" depending on how the value was written.
func tryParseTime(s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		return time.Parse("2006-01-02T15:04:05Z", s)
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
