package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

type DockPosition string

const (
	DockPosition_Top    DockPosition = "top"
	DockPosition_Bottom DockPosition = "bottom"
	DockPosition_Left   DockPosition = "left"
	DockPosition_Right  DockPosition = "right"
)

type ViewMode string

const (
	ViewMode_Docked ViewMode = "docked"
	ViewMode_Free   ViewMode = "free"
)

// ScreenHint tells the tutor view where a lesson wants to sit on screen
// relative to the program it accompanies.
type ScreenHint struct {
	Position        DockPosition `yaml:"position"`
	Mode            ViewMode     `yaml:"mode"`
	PreferredWidth  int          `yaml:"preferred_width"`
	PreferredHeight int          `yaml:"preferred_height"`
	PreferredAspect float64      `yaml:"preferred_aspect"`
}

func DefaultScreenHint() *ScreenHint {
	return &ScreenHint{
		Position: DockPosition_Right,
		Mode:     ViewMode_Docked,
	}
}

// ProgramLaunchInfo describes the companion program a lesson teaches.
type ProgramLaunchInfo struct {
	BinName string   `yaml:"bin_name"`
	Path    string   `yaml:"path"`
	Args    []string `yaml:"args"`
}

type LessonMetadata struct {
	Title                string         `yaml:"title"`
	Tags                 []string       `yaml:"tags"`
	MinGrade             int            `yaml:"min_grade"`
	SkillLevel           int            `yaml:"skill_level"`
	Subjects             []string       `yaml:"subjects"`
	SkillLevelPerSubject map[string]int `yaml:"skill_level_per_subject"`
	MarkdownFile         string         `yaml:"markdown_file"`
	PreviewImage         string         `yaml:"preview_image"`
	UnitURL              string         `yaml:"unit_url"`

	ScreenHint        *ScreenHint        `yaml:"screen_hint"`
	ProgramLaunchInfo *ProgramLaunchInfo `yaml:"program_launch_info"`
}

// Lesson is one unit directory resolved to a markdown body.
type Lesson struct {
	Title       string          `json:"title"`
	Path        string          `json:"path"`
	ContentPath string          `json:"content_path"`
	Metadata    *LessonMetadata `json:"metadata,omitempty"`
}

func (c *Lesson) Hint() *ScreenHint {
	if c.Metadata != nil && c.Metadata.ScreenHint != nil {
		return c.Metadata.ScreenHint
	}
	return DefaultScreenHint()
}

func (c *Lesson) SkillLevel() int {
	if c.Metadata != nil {
		return c.Metadata.SkillLevel
	}
	return 0
}

// TutorialURL returns the LiaScript dev server URL for the lesson, or the
// explicit unit_url from metadata when set.
func (c *Lesson) TutorialURL(conf *PortalConfig) string {
	if c.Metadata != nil && c.Metadata.UnitURL != "" {
		return c.Metadata.UnitURL
	}
	rel := c.Path
	if filepath.IsAbs(rel) {
		r, err := filepath.Rel(conf.UnitRootPath, rel)
		if err == nil {
			rel = r
		}
	}
	markdown := filepath.Base(c.ContentPath)
	relURL := strings.ReplaceAll(filepath.Join(rel, markdown), string(filepath.Separator), "/")
	return fmt.Sprintf("%s%s?%s/%s", conf.LiascriptDevserver, conf.LiascriptHTMLPath, conf.LiascriptDevserver, relURL)
}

type CourseMetadata struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	SkillLevel  int      `yaml:"skill_level"`
}

type Course struct {
	Title          string          `json:"title"`
	CollectionName string          `json:"collection_name"`
	Path           string          `json:"path"`
	Metadata       *CourseMetadata `json:"metadata,omitempty"`
	Lessons        []*Lesson       `json:"lessons"`
}

type Collection struct {
	Title    string `json:"title"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Writable bool   `json:"writable"`
}

// PortalConfig is the YAML portal configuration.
type PortalConfig struct {
	UnitRootPath       string       `yaml:"unit_root_path"`
	LiascriptDevserver string       `yaml:"liascript_devserver"`
	LiascriptHTMLPath  string       `yaml:"liascript_html_path"`
	Vision             VisionConfig `yaml:"vision"`
}

type VisionConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Timeout   string `yaml:"timeout"`
}

func DefaultPortalConfig() *PortalConfig {
	return &PortalConfig{
		UnitRootPath:       "./tutor-next/markdown",
		LiascriptDevserver: "http://localhost:3000",
		LiascriptHTMLPath:  "/liascript/index.html",
		Vision: VisionConfig{
			APIKeyEnv: "VISION_API_KEY",
			Timeout:   "30s",
		},
	}
}
