package ui

import "testing"

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"system", "en"},
		{"xx", "en"},
		{"pt", "pt"},
	}

	for _, tt := range tests {
		l := NewLocalization()
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.expected {
			t.Errorf("SetLanguage(%q) current = %q, expected %q", tt.lang, got, tt.expected)
		}
	}
}

func TestLocalization_GetText(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText(KeyUndo); got != "Undo" {
		t.Errorf("GetText(KeyUndo) = %q, expected %q", got, "Undo")
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q, expected the key", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyUndo); got != "Отменить" {
		t.Errorf("GetText(KeyUndo) ru = %q", got)
	}
}

func TestLocalization_Complete(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Errorf("language %q has no texts", lang)
			continue
		}
		for key := range l.texts["en"] {
			if _, ok := texts[key]; !ok {
				t.Errorf("language %q is missing %q", lang, key)
			}
		}
	}
}
