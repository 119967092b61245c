package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xhd2015/less-gen/flags"
	"golang.org/x/term"

	"github.com/schulstick/portal/data"
	"github.com/schulstick/portal/models"
	"github.com/schulstick/portal/ui/search"
	"github.com/schulstick/portal/ui/tree"
)

const listHelp = `
list - Display the lesson catalog in tree format

Options:
  --json                       Output raw JSON data instead of formatted tree
  --include <pattern>          Only include lessons matching the pattern
  --subject <subject>          Only include lessons teaching the subject
  --grade <n>                  Only include lessons for the given grade
  --show-url                   Show the tutorial URL of each lesson
  --warnings                   Print scan warnings after the tree
  --unit-root <dir>            Lesson directory (default from portal config)
  --storage <type>             Storage backend: sqlite (default), file, or server
  --server-addr <addr>         Server address (required when --storage=server)
  --server-token <token>       Server authentication token (optional when --storage=server)
  -h,--help                    Show this help message

Examples:
  portal list                  Show all lessons in tree format
  portal list --json           Output raw JSON data
  portal list --include gimp   Show only lessons matching "gimp"
`

func handleList(args []string) error {
	var unitRoot string
	var storageType string
	var serverAddr string
	var serverToken string
	var jsonOutput bool
	var includePattern string
	var subject string
	var gradeStr string
	var showURL bool
	var showWarnings bool

	args, err := flags.String("--unit-root", &unitRoot).
		String("--storage", &storageType).
		String("--server-addr", &serverAddr).
		String("--server-token", &serverToken).
		Bool("--json", &jsonOutput).
		String("--include", &includePattern).
		String("--subject", &subject).
		String("--grade", &gradeStr).
		Bool("--show-url", &showURL).
		Bool("--warnings", &showWarnings).
		Help("-h,--help", listHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	storageConfig, err := ApplyConfigDefaults(storageType, serverAddr, serverToken)
	if err != nil {
		return err
	}
	if storageConfig.StorageType == "server" && storageConfig.ServerAddr == "" {
		return fmt.Errorf("--server-addr is required when --storage=server")
	}

	portalConf, err := data.LoadPortalConfig()
	if err != nil {
		return err
	}
	if unitRoot == "" {
		unitRoot = portalConf.UnitRootPath
	}

	progressService, err := createProgressService(storageConfig.StorageType, storageConfig.ServerAddr, storageConfig.ServerToken)
	if err != nil {
		return err
	}

	manager := data.NewCatalogManager(unitRoot, progressService)
	err = manager.Init()
	if err != nil {
		return err
	}

	collections := search.FilterCollections(manager.Collections, includePattern)

	if subject != "" {
		collections = keepLessons(collections, manager.Catalog.FilterBySubject(subject))
	}
	if gradeStr != "" {
		grade, err := strconv.Atoi(gradeStr)
		if err != nil {
			return fmt.Errorf("invalid --grade: %s", gradeStr)
		}
		collections = keepLessons(collections, manager.Catalog.FilterByGrade(grade))
	}

	if jsonOutput {
		return outputJSON(collections)
	}

	if !showWarnings {
		for _, warning := range manager.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning.String())
		}
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	renderCollections(os.Stdout, isTTY, collections, showURL, portalConf)

	if showWarnings {
		for _, warning := range manager.Warnings() {
			fmt.Printf("warning: %s\n", warning.String())
		}
	}
	return nil
}

// keepLessons prunes the view tree down to the given lessons, dropping
// courses and collections left empty.
func keepLessons(collections []*models.CollectionView, lessons []*models.Lesson) []*models.CollectionView {
	keep := make(map[*models.Lesson]bool, len(lessons))
	for _, lesson := range lessons {
		keep[lesson] = true
	}

	var result []*models.CollectionView
	for _, collection := range collections {
		var courses []*models.CourseView
		for _, course := range collection.Courses {
			var kept []*models.LessonView
			for _, lesson := range course.Lessons {
				if keep[lesson.Data] {
					kept = append(kept, lesson)
				}
			}
			if len(kept) > 0 {
				courses = append(courses, &models.CourseView{
					Data:      course.Data,
					Lessons:   kept,
					Collapsed: course.Collapsed,
				})
			}
		}
		if len(courses) > 0 {
			result = append(result, &models.CollectionView{
				Data:    collection.Data,
				Courses: courses,
			})
		}
	}
	return result
}

// renderCollections renders the catalog with proper tree connectors
func renderCollections(out io.Writer, isTTY bool, collections []*models.CollectionView, showURL bool, portalConf *models.PortalConfig) {
	for _, collection := range collections {
		title := collection.Data.Title
		if title == "" {
			title = collection.Data.Name
		}
		io.WriteString(out, title+"\n")
		for ci, course := range collection.Courses {
			courseIsLast := ci == len(collection.Courses)-1
			prefix := tree.BuildTreePrefix(1, []bool{courseIsLast})
			io.WriteString(out, prefix+tree.RenderCourse(course)+"\n")
			for li, lesson := range course.Lessons {
				lessonPrefix := tree.BuildTreePrefix(2, []bool{courseIsLast, li == len(course.Lessons)-1})
				line := lessonPrefix + tree.RenderLesson(lesson, isTTY)
				if showURL {
					line += "  " + lesson.Data.TutorialURL(portalConf)
				}
				io.WriteString(out, line+"\n")
			}
		}
	}
}

func RenderToString(collections []*models.CollectionView, showURL bool, simulateTTY bool, portalConf *models.PortalConfig) string {
	var b bytes.Buffer
	renderCollections(&b, simulateTTY, collections, showURL, portalConf)
	return b.String()
}

func outputJSON(collections []*models.CollectionView) error {
	type lessonJSON struct {
		Title     string `json:"title"`
		Path      string `json:"path"`
		URL       string `json:"url,omitempty"`
		Completed bool   `json:"completed"`
		OpenCount int    `json:"open_count"`
	}
	type courseJSON struct {
		Title   string       `json:"title"`
		Lessons []lessonJSON `json:"lessons"`
	}
	type collectionJSON struct {
		Name    string       `json:"name"`
		Title   string       `json:"title"`
		Courses []courseJSON `json:"courses"`
	}

	out := make([]collectionJSON, 0, len(collections))
	for _, collection := range collections {
		cj := collectionJSON{
			Name:  collection.Data.Name,
			Title: collection.Data.Title,
		}
		for _, course := range collection.Courses {
			course2 := courseJSON{Title: course.Data.Title}
			for _, lesson := range course.Lessons {
				lj := lessonJSON{
					Title: lesson.Data.Title,
					Path:  lesson.Data.Path,
				}
				if lesson.Progress != nil {
					lj.Completed = lesson.Progress.Completed
					lj.OpenCount = lesson.Progress.OpenCount
				}
				course2.Lessons = append(course2.Lessons, lj)
			}
			cj.Courses = append(cj.Courses, course2)
		}
		out = append(out, cj)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
