package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/pictures"
	settings.SetOutputDirectory(customDir)

	retrievedDir := settings.GetOutputDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, retrievedDir)
	}
}

func TestAskWhereToSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAskWhereToSave() != DefaultAskWhereToSave {
		t.Errorf("Expected default ask-where-to-save %v", DefaultAskWhereToSave)
	}

	settings.SetAskWhereToSave(true)
	if !settings.GetAskWhereToSave() {
		t.Error("Expected ask-where-to-save to be enabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto-reveal %v", DefaultAutoRevealComplete)
	}

	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
