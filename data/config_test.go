package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/schulstick/portal/models"
)

// useDevConfig redirects config files into a temp dir via the
// development environment switch.
func useDevConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv("SCHULSTICK_ENV", "development")
}

func TestLoadConfigMissingIsNil(t *testing.T) {
	useDevConfig(t)
	conf, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if conf != nil {
		t.Errorf("expected nil config, got %+v", conf)
	}
}

func TestConfigRoundtrip(t *testing.T) {
	useDevConfig(t)
	err := SaveConfig(&models.Config{
		StorageType: "file",
		RunningPID:  1234,
		LastLesson:  "multimedia/gimp/layers",
	})
	if err != nil {
		t.Fatal(err)
	}

	conf, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if conf == nil || conf.StorageType != "file" || conf.RunningPID != 1234 || conf.LastLesson != "multimedia/gimp/layers" {
		t.Errorf("unexpected config %+v", conf)
	}
}

func TestLoadPortalConfigDefaults(t *testing.T) {
	useDevConfig(t)
	conf, err := LoadPortalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if conf.UnitRootPath != "./tutor-next/markdown" {
		t.Errorf("unexpected unit root %q", conf.UnitRootPath)
	}
	if conf.LiascriptDevserver != "http://localhost:3000" {
		t.Errorf("unexpected devserver %q", conf.LiascriptDevserver)
	}
	if conf.Vision.APIKeyEnv != "VISION_API_KEY" {
		t.Errorf("unexpected api key env %q", conf.Vision.APIKeyEnv)
	}
}

func TestLoadPortalConfigPartialFileKeepsDefaults(t *testing.T) {
	useDevConfig(t)
	if err := os.MkdirAll("dev_config", 0755); err != nil {
		t.Fatal(err)
	}
	content := "unit_root_path: /srv/units\n"
	if err := os.WriteFile(filepath.Join("dev_config", "schulstick-portal-config.yml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	conf, err := LoadPortalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if conf.UnitRootPath != "/srv/units" {
		t.Errorf("expected override, got %q", conf.UnitRootPath)
	}
	if conf.LiascriptHTMLPath != "/liascript/index.html" {
		t.Errorf("expected default html path, got %q", conf.LiascriptHTMLPath)
	}
}

func TestPreferencesDefaultsAndRoundtrip(t *testing.T) {
	useDevConfig(t)
	prefs, err := LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.User.Nick != "Anonymous" || prefs.Skill.Grade != 1 {
		t.Errorf("unexpected defaults %+v", prefs)
	}

	prefs.User.Nick = "Kim"
	prefs.Skill.Grade = 4
	prefs.Support.WelcomeWizardFinished = true
	if err := SavePreferences(prefs); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.User.Nick != "Kim" || loaded.Skill.Grade != 4 || !loaded.Support.WelcomeWizardFinished {
		t.Errorf("roundtrip lost data: %+v", loaded)
	}
	// untouched defaults survive the roundtrip
	if loaded.User.Locale != "de_DE" {
		t.Errorf("unexpected locale %q", loaded.User.Locale)
	}
}
