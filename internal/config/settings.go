package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyCatalogSource       = "catalog_source"
	KeyMaxParallelPreviews = "max_parallel_previews"
	KeySearchDebounceMs    = "search_debounce_ms"
	KeyLanguage            = "app_language"
	KeyCompactTheme        = "compact_theme"
)

// Default values
const (
	DefaultMaxParallelPreviews = 4
	DefaultSearchDebounceMs    = 300
	DefaultLanguage            = "system"
	DefaultCompactTheme        = true
)

const (
	minSearchDebounceMs = 50
	maxSearchDebounceMs = 2000
	maxParallelPreviews = 16
)

// Settings manages desktop preferences. Catalog data is never stored here,
// only how the gallery is presented.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCatalogSource returns the catalog chosen in the settings dialog.
// An empty value means the source from Options is used.
func (s *Settings) GetCatalogSource() string {
	return s.app.Preferences().String(KeyCatalogSource)
}

// SetCatalogSource stores a catalog path or URL
func (s *Settings) SetCatalogSource(source string) {
	s.app.Preferences().SetString(KeyCatalogSource, source)
}

// GetMaxParallelPreviews returns how many preview images load at once
func (s *Settings) GetMaxParallelPreviews() int {
	value := s.app.Preferences().Int(KeyMaxParallelPreviews)
	if value <= 0 {
		s.SetMaxParallelPreviews(DefaultMaxParallelPreviews)
		return DefaultMaxParallelPreviews
	}
	return value
}

// SetMaxParallelPreviews sets the preview concurrency, clamped to 1..16
func (s *Settings) SetMaxParallelPreviews(count int) {
	s.app.Preferences().SetInt(KeyMaxParallelPreviews, clamp(count, 1, maxParallelPreviews))
}

// GetSearchDebounce returns the search quiet period
func (s *Settings) GetSearchDebounce() time.Duration {
	value := s.app.Preferences().Int(KeySearchDebounceMs)
	if value <= 0 {
		s.SetSearchDebounce(DefaultSearchDebounceMs * time.Millisecond)
		return DefaultSearchDebounceMs * time.Millisecond
	}
	return time.Duration(value) * time.Millisecond
}

// SetSearchDebounce sets the quiet period, clamped to 50ms..2s
func (s *Settings) SetSearchDebounce(d time.Duration) {
	ms := clamp(int(d/time.Millisecond), minSearchDebounceMs, maxSearchDebounceMs)
	s.app.Preferences().SetInt(KeySearchDebounceMs, ms)
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

// GetCompactTheme reports whether the dense card layout is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme toggles the dense card layout
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
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

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
