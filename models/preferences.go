package models

type Gender string

const (
	Gender_Male   Gender = "male"
	Gender_Female Gender = "female"
	Gender_Other  Gender = "other"
)

var SupportedLocales = []string{"de_DE", "en_US"}

type SkillLevelPreferences struct {
	Grade    int            `yaml:"grade"`
	Age      int            `yaml:"age"`
	Subjects map[string]int `yaml:"subjects"`
}

type UserPreferences struct {
	Nick   string `yaml:"nick"`
	Avatar string `yaml:"avatar"`
	Locale string `yaml:"locale"`
	Gender Gender `yaml:"gender"`
}

type SupportPreferences struct {
	WelcomeWizardFinished bool `yaml:"welcome_wizard_finished"`
	AllowExternalLinks    bool `yaml:"allow_external_links"`
	RememberExternalLinks bool `yaml:"remember_external_links"`
}

// Preferences is the per-user YAML preferences file.
type Preferences struct {
	Skill   SkillLevelPreferences `yaml:"skill"`
	User    UserPreferences       `yaml:"user"`
	Support SupportPreferences    `yaml:"support"`
}

func DefaultPreferences() *Preferences {
	return &Preferences{
		Skill: SkillLevelPreferences{
			Grade: 1,
			Age:   6,
			Subjects: map[string]int{
				"german":           1,
				"foreign_language": 1,
				"mathematics":      1,
				"computer_science": 1,
				"natural_science":  1,
			},
		},
		User: UserPreferences{
			Nick:   "Anonymous",
			Avatar: "default.png",
			Locale: "de_DE",
			Gender: Gender_Other,
		},
	}
}
