package run

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xhd2015/less-gen/flags"

	"github.com/schulstick/portal/data/storage"
	"github.com/schulstick/portal/models"
)

const exportHelp = `
export <json_file>

Export all lesson progress records to a JSON file.
`

const importHelp = `
import <json_file>

Import lesson progress records from a JSON file.
Records for lessons that already have progress will be skipped.
`

type ExportData struct {
	Progress []models.LessonProgress `json:"progress"`
}

func handleExport(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", exportHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("export requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	progressService, err := resolveProgressService(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}

	records, _, err := progressService.List(storage.LessonProgressListOptions{})
	if err != nil {
		return err
	}

	exportData := ExportData{Progress: records}
	data, err := json.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	err = os.WriteFile(jsonFile, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	fmt.Printf("Exported %d records to %s\n", len(exportData.Progress), jsonFile)
	return nil
}

func handleImport(args []string) error {
	var storageType string
	var serverAddr string
	var serverToken string

	args, err := flags.String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Help("-h,--help", importHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) != 1 {
		return fmt.Errorf("import requires exactly one argument: <json_file>")
	}
	jsonFile := args[0]

	progressService, err := resolveProgressService(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(jsonFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var importData ExportData
	if err := json.Unmarshal(raw, &importData); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	var imported, skipped int
	for _, record := range importData.Progress {
		existing, err := progressService.Get(record.LessonPath)
		if err != nil {
			return err
		}
		if existing != nil {
			skipped++
			continue
		}
		record.ID = 0
		if _, err := progressService.Add(record); err != nil {
			return err
		}
		imported++
	}

	fmt.Printf("Imported %d records, skipped %d\n", imported, skipped)
	return nil
}

func resolveProgressService(storageType string, serverAddr string, serverToken string) (storage.LessonProgressService, error) {
	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return nil, err
	}
	if storageConfig.StorageType == "server" && storageConfig.ServerAddr == "" {
		return nil, fmt.Errorf("--server-addr is required when --storage=server")
	}
	return createProgressService(storageConfig.StorageType, storageConfig.ServerAddr, storageConfig.ServerToken)
}
