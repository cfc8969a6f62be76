package i18n

import (
	"strings"
	"testing"
)

// TestMessageCoverage enforces the package contract: every key carries
// both languages, non-empty.
func TestMessageCoverage(t *testing.T) {
	for _, key := range Keys() {
		for _, lang := range []Language{LangEnglish, LangRussian} {
			text := T(key, lang)
			if text == "" || text == key {
				t.Errorf("key %q has no %s translation", key, lang)
			}
		}
	}
}

// TestFormatDirectiveParity verifies that both translations of a key
// expect the same number of arguments, so Pair can format them with one
// argument list.
func TestFormatDirectiveParity(t *testing.T) {
	for _, key := range Keys() {
		en := strings.Count(T(key, LangEnglish), "%")
		ru := strings.Count(T(key, LangRussian), "%")
		if en != ru {
			t.Errorf("key %q has %d directives in English but %d in Russian", key, en, ru)
		}
	}
}

func TestPairFormatsBothLanguages(t *testing.T) {
	en, ru := Pair("rationale.skip.pain", 8)
	if !strings.Contains(en, "8/10") {
		t.Errorf("English rendering missing the argument: %q", en)
	}
	if !strings.Contains(ru, "8/10") {
		t.Errorf("Russian rendering missing the argument: %q", ru)
	}
	if en == ru {
		t.Error("both languages rendered identically")
	}
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	if got := T("rationale.does.not.exist", LangRussian); got != "rationale.does.not.exist" {
		t.Errorf("unknown key rendered as %q, want the key itself", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  Language
	}{
		{"ru", LangRussian},
		{"RU", LangRussian},
		{"en", LangEnglish},
		{"", LangEnglish},
		{"de", LangEnglish},
	}
	for _, tc := range cases {
		if got := ParseLanguage(tc.input); got != tc.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}
