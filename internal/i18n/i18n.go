// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for
// digitcipher. Translations are YAML files embedded into the binary and loaded
// through go-i18n; the active language can be switched at runtime.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init loads every embedded locale and activates lang. Unknown languages fall
// back to English at lookup time.
func Init(l string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, l)
	lang = l
	mu.Unlock()
}

// SetLang changes the active language.
func SetLang(l string) {
	Init(l)
}

// GetLang returns the language passed to the last Init or SetLang.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// GetAvailableLocales maps every embedded locale code to its name written in
// that language, e.g. "es" -> "español".
func GetAvailableLocales() map[string]string {
	ensureInit()
	mu.RLock()
	tags := bundle.LanguageTags()
	mu.RUnlock()

	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out[tag.String()] = name
	}
	return out
}

// T translates messageID into the active language.
//
// A single map[string]any argument is used as template data. Any other
// arguments are applied to the translated text with fmt.Sprintf. When the id
// is unknown in every language, the id itself is returned.
func T(messageID string, args ...any) string {
	ensureInit()

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	mu.RLock()
	loc := localizer
	mu.RUnlock()

	msg, err := loc.Localize(cfg)
	if err != nil || msg == "" {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func ensureInit() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}
