package run

import (
	"fmt"

	istorage "github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/data/storage/filestore"
	"github.com/schulstick/portal/data/storage/memory"
	"github.com/schulstick/portal/data/storage/server"
	"github.com/schulstick/portal/data/storage/sqlite"
	"github.com/schulstick/portal/internal/config"
)

func createProgressService(storageType string, serverAddr string, serverToken string) (istorage.LessonProgressService, error) {
	switch storageType {
	case "sqlite":
		sqliteFile, err := config.GetSqliteFile()
		if err != nil {
			return nil, err
		}

		sqliteStore, err := sqlite.New(sqliteFile)
		if err != nil {
			return nil, err
		}
		return &sqlite.LessonProgressSQLiteStore{
			SQLiteStore: sqliteStore,
		}, nil
	case "file":
		progressFile, err := config.GetProgressJSONFile()
		if err != nil {
			return nil, err
		}
		return filestore.NewLessonProgressService(progressFile)
	case "server":
		return server.NewLessonProgressService(server.NewClient(serverAddr, serverToken)), nil
	case "memory":
		return memory.NewLessonProgressService(), nil
	default:
		return nil, fmt.Errorf("unsupported storage type: %s, available: sqlite, file, server", storageType)
	}
}
