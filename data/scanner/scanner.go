package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/schulstick/portal/log"
	"github.com/schulstick/portal/models"
)

// Warning is a non-fatal problem found while scanning. The scan itself
// never fails because of bad lesson content.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (c Warning) String() string {
	return c.Path + ": " + c.Message
}

// Catalog is the result of scanning a unit root directory.
type Catalog struct {
	Collections []*models.Collection
	Courses     []*models.Course
	Warnings    []Warning
}

func (c *Catalog) Lessons() []*models.Lesson {
	var lessons []*models.Lesson
	for _, course := range c.Courses {
		lessons = append(lessons, course.Lessons...)
	}
	return lessons
}

func (c *Catalog) CoursesByCollection(name string) []*models.Course {
	var courses []*models.Course
	for _, course := range c.Courses {
		if course.CollectionName == name {
			courses = append(courses, course)
		}
	}
	return courses
}

// FilterBySubject returns lessons whose metadata lists the subject.
func (c *Catalog) FilterBySubject(subject string) []*models.Lesson {
	var lessons []*models.Lesson
	for _, lesson := range c.Lessons() {
		if lesson.Metadata == nil {
			continue
		}
		for _, s := range lesson.Metadata.Subjects {
			if s == subject {
				lessons = append(lessons, lesson)
				break
			}
		}
	}
	return lessons
}

// FilterByGrade returns lessons suitable for the given grade.
func (c *Catalog) FilterByGrade(grade int) []*models.Lesson {
	var lessons []*models.Lesson
	for _, lesson := range c.Lessons() {
		if lesson.Metadata != nil && lesson.Metadata.MinGrade <= grade {
			lessons = append(lessons, lesson)
		}
	}
	return lessons
}

type scan struct {
	warnings []Warning
}

func (s *scan) warnf(path string, format string, args ...interface{}) {
	w := Warning{Path: path, Message: fmt.Sprintf(format, args...)}
	s.warnings = append(s.warnings, w)
	log.Warnf(context.Background(), "scan: %s", w.String())
}

// Scan walks root -> collection dirs -> course dirs -> lesson dirs and
// builds the catalog. Only a missing root is an error; everything else
// degrades to warnings.
func Scan(root string) (*Catalog, error) {
	stat, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("unit root %s: %w", root, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("unit root %s is not a directory", root)
	}

	s := &scan{}
	catalog := &Catalog{}

	collectionDirs, err := readSubDirs(root)
	if err != nil {
		return nil, err
	}
	for _, collectionDir := range collectionDirs {
		name := filepath.Base(collectionDir)
		catalog.Collections = append(catalog.Collections, &models.Collection{
			Title:    name,
			Name:     name,
			Path:     collectionDir,
			Writable: true,
		})

		courseDirs, err := readSubDirs(collectionDir)
		if err != nil {
			s.warnf(collectionDir, "failed to read collection: %v", err)
			continue
		}
		for _, courseDir := range courseDirs {
			course := s.loadCourse(courseDir, name)
			catalog.Courses = append(catalog.Courses, course)
		}
	}

	catalog.Warnings = s.warnings
	return catalog, nil
}

func (s *scan) loadCourse(courseDir string, collectionName string) *models.Course {
	course := &models.Course{
		Title:          filepath.Base(courseDir),
		CollectionName: collectionName,
		Path:           courseDir,
	}

	courseYml := filepath.Join(courseDir, "course.yml")
	if data, err := os.ReadFile(courseYml); err == nil {
		var metadata models.CourseMetadata
		if err := yaml.Unmarshal(data, &metadata); err != nil {
			s.warnf(courseYml, "failed to parse course metadata: %v", err)
		} else {
			course.Metadata = &metadata
			if metadata.Title != "" {
				course.Title = metadata.Title
			}
		}
	}

	course.Lessons = s.scanLessons(courseDir)
	return course
}

func (s *scan) scanLessons(courseDir string) []*models.Lesson {
	var lessons []*models.Lesson

	lessonDirs, err := readSubDirs(courseDir)
	if err != nil {
		s.warnf(courseDir, "failed to read course: %v", err)
		return nil
	}
	for _, lessonDir := range lessonDirs {
		lesson := s.loadLesson(lessonDir)
		if lesson != nil {
			lessons = append(lessons, lesson)
		}
	}
	if len(lessonDirs) > 0 {
		return lessons
	}

	// a course without lesson directories may carry markdown files directly
	for _, mdFile := range markdownFiles(courseDir) {
		base := filepath.Base(mdFile)
		lessons = append(lessons, &models.Lesson{
			Title:       strings.TrimSuffix(base, filepath.Ext(base)),
			Path:        courseDir,
			ContentPath: mdFile,
		})
	}
	return lessons
}

func (s *scan) loadLesson(lessonDir string) *models.Lesson {
	metadata, malformed := s.loadLessonMetadata(lessonDir)
	if malformed {
		return nil
	}

	contentPath := ""
	if metadata != nil && metadata.MarkdownFile != "" {
		p := filepath.Join(lessonDir, metadata.MarkdownFile)
		if _, err := os.Stat(p); err == nil {
			contentPath = p
		} else {
			s.warnf(lessonDir, "markdown_file %s does not exist, falling back", metadata.MarkdownFile)
		}
	}
	if contentPath == "" {
		contentPath = s.resolveContent(lessonDir)
		if contentPath == "" {
			return nil
		}
	}

	title := ""
	if metadata != nil {
		title = metadata.Title
	}
	if title == "" {
		title = filepath.Base(filepath.Dir(lessonDir)) + " - " + filepath.Base(lessonDir)
	}

	return &models.Lesson{
		Title:       title,
		Path:        lessonDir,
		ContentPath: contentPath,
		Metadata:    metadata,
	}
}

// loadLessonMetadata reads lesson.yml, falling back to metadata.yml.
// A missing file is fine; a malformed one warns and excludes the lesson.
func (s *scan) loadLessonMetadata(lessonDir string) (*models.LessonMetadata, bool) {
	for _, name := range []string{"lesson.yml", "metadata.yml"} {
		metaFile := filepath.Join(lessonDir, name)
		data, err := os.ReadFile(metaFile)
		if err != nil {
			continue
		}
		var metadata models.LessonMetadata
		if err := yaml.Unmarshal(data, &metadata); err != nil {
			s.warnf(metaFile, "failed to parse lesson metadata: %v", err)
			return nil, true
		}
		return &metadata, false
	}
	return nil, false
}

// resolveContent picks the lesson body: content.md when present, otherwise
// the sole markdown file, otherwise the first one in lexical order with a
// warning. No markdown at all excludes the lesson.
func (s *scan) resolveContent(lessonDir string) string {
	contentMd := filepath.Join(lessonDir, "content.md")
	if _, err := os.Stat(contentMd); err == nil {
		return contentMd
	}

	mdFiles := markdownFiles(lessonDir)
	switch len(mdFiles) {
	case 0:
		s.warnf(lessonDir, "no markdown files, lesson excluded")
		return ""
	case 1:
		return mdFiles[0]
	default:
		s.warnf(lessonDir, "no content.md among %d markdown files, using %s", len(mdFiles), filepath.Base(mdFiles[0]))
		return mdFiles[0]
	}
}

func readSubDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(dirs)
	return dirs, nil
}

func markdownFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".md") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files
}
