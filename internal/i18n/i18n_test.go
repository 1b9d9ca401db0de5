// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"

	"github.com/toeirei/digitcipher/internal/cipher"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "es"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q, got %v", k, av)
		}
	}
	if av["es"] != "español" {
		t.Fatalf("unexpected display name for es: %q", av["es"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("validation.empty"); got != "Please enter a number" {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("cli.history_cleared", 3); got != "Removed 3 history entries." {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("es")
	if GetLang() != "es" {
		t.Fatalf("expected lang 'es', got %q", GetLang())
	}
	if got := T("validation.non_digit"); got != "Solo se aceptan dígitos numéricos" {
		t.Fatalf("unexpected Spanish translation: %q", got)
	}
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("validation.wrong_length"); got != "The number must have exactly 6 digits" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestEveryValidationReasonIsTranslated(t *testing.T) {
	defer Init("en")
	reasons := []cipher.Reason{cipher.ReasonEmpty, cipher.ReasonWrongLength, cipher.ReasonNonDigit}
	for code := range GetAvailableLocales() {
		Init(code)
		for _, r := range reasons {
			if got := T(r.MessageID()); got == r.MessageID() {
				t.Fatalf("locale %s has no message for %s", code, r.MessageID())
			}
		}
	}
}
