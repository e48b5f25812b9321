package config

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/uikit/internal/notify"
)

// Settings keys for Fyne preferences
const (
	KeyToastAutoHide       = "toast_auto_hide_ms"
	KeyAgeIncludeSeconds   = "age_include_seconds"
	KeyToastMaxLength      = "toast_max_length"
	KeyLanguage            = "app_language"
	KeySystemNotifications = "system_notifications"
	KeyThemeFile           = "theme_file"
)

// Default values
const (
	DefaultToastAutoHide       = 5 * time.Second
	DefaultAgeIncludeSeconds   = false
	DefaultToastMaxLength      = 120
	DefaultLanguage            = "system"
	DefaultSystemNotifications = true
)

// Limits applied by setters
const (
	MinToastAutoHide  = time.Second
	MaxToastAutoHide  = time.Minute
	MinToastMaxLength = 10
	MaxToastMaxLength = 500
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetToastAutoHide returns how long toasts stay visible
func (s *Settings) GetToastAutoHide() time.Duration {
	ms := s.app.Preferences().Int(KeyToastAutoHide)
	if ms <= 0 {
		s.SetToastAutoHide(DefaultToastAutoHide)
		return DefaultToastAutoHide
	}
	return time.Duration(ms) * time.Millisecond
}

// SetToastAutoHide sets how long toasts stay visible, clamped to 1s..1m
func (s *Settings) SetToastAutoHide(d time.Duration) {
	if d < MinToastAutoHide {
		d = MinToastAutoHide
	}
	if d > MaxToastAutoHide {
		d = MaxToastAutoHide
	}
	s.app.Preferences().SetInt(KeyToastAutoHide, int(d.Milliseconds()))
}

// GetAgeIncludeSeconds returns whether ages past one minute keep their seconds
func (s *Settings) GetAgeIncludeSeconds() bool {
	return s.app.Preferences().BoolWithFallback(KeyAgeIncludeSeconds, DefaultAgeIncludeSeconds)
}

// SetAgeIncludeSeconds sets whether ages past one minute keep their seconds
func (s *Settings) SetAgeIncludeSeconds(include bool) {
	s.app.Preferences().SetBool(KeyAgeIncludeSeconds, include)
}

// GetToastMaxLength returns the longest toast message shown before cutting
func (s *Settings) GetToastMaxLength() int {
	value := s.app.Preferences().Int(KeyToastMaxLength)
	if value <= 0 {
		s.SetToastMaxLength(DefaultToastMaxLength)
		return DefaultToastMaxLength
	}
	return value
}

// SetToastMaxLength sets the longest toast message, clamped to 10..500
func (s *Settings) SetToastMaxLength(n int) {
	if n < MinToastMaxLength {
		n = MinToastMaxLength
	}
	if n > MaxToastMaxLength {
		n = MaxToastMaxLength
	}
	s.app.Preferences().SetInt(KeyToastMaxLength, n)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetSystemNotifications returns whether failures are also sent to the OS
func (s *Settings) GetSystemNotifications() bool {
	return s.app.Preferences().BoolWithFallback(KeySystemNotifications, DefaultSystemNotifications)
}

// SetSystemNotifications sets whether failures are also sent to the OS
func (s *Settings) SetSystemNotifications(enabled bool) {
	s.app.Preferences().SetBool(KeySystemNotifications, enabled)
}

// GetThemeFile returns the path of the toast theme file, empty when unset
func (s *Settings) GetThemeFile() string {
	return s.app.Preferences().String(KeyThemeFile)
}

// SetThemeFile sets the path of the toast theme file
func (s *Settings) SetThemeFile(path string) {
	s.app.Preferences().SetString(KeyThemeFile, path)
}

// ToasterOptions returns notify options matching the current settings
func (s *Settings) ToasterOptions() []notify.ToasterOption {
	return []notify.ToasterOption{
		notify.WithAutoHide(s.GetToastAutoHide()),
		notify.WithMaxLength(s.GetToastMaxLength()),
		notify.WithSystemNotifications(s.GetSystemNotifications()),
	}
}

// LoadThemes reads toast colors from a YAML theme file. An empty path yields
// the default themes.
func LoadThemes(path string) (notify.Themes, error) {
	if path == "" {
		return notify.DefaultThemes(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	themes, err := notify.ParseThemes(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return themes, nil
}
