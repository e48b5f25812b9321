package ui

import "testing"

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyCompare); got != "Compare" {
		t.Errorf("Expected English text 'Compare', got '%s'", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyCompare); got != "Сравнить" {
		t.Errorf("Expected Russian text 'Сравнить', got '%s'", got)
	}

	// Unknown keys fall back to the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got '%s'", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
