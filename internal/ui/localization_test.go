package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	l.SetLanguage("xx")
	assert.Equal(t, "en", l.GetCurrentLanguage())

	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !assert.True(t, ok, code) {
			continue
		}
		for key := range english {
			assert.NotEmpty(t, texts[key], "%s: %s", code, key)
		}
	}
}
