package config

import (
	"fyne.io/fyne/v2"

	"github.com/pngify/pngify/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyAskWhereToSave     = "ask_where_to_save"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultAskWhereToSave     = false
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory for converted files
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/pngify"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetAskWhereToSave returns whether each conversion prompts for a save
// location instead of writing into the output directory
func (s *Settings) GetAskWhereToSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAskWhereToSave, DefaultAskWhereToSave)
}

// SetAskWhereToSave sets whether to prompt for a save location
func (s *Settings) SetAskWhereToSave(ask bool) {
	s.app.Preferences().SetBool(KeyAskWhereToSave, ask)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to auto-reveal converted files
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal converted files
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
