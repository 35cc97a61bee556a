// Copyright (c) 2026 Shelfmaster Team
// Shelfmaster - library catalog and borrower tracker
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Shelfmaster.
// It uses the go-i18n library to load and manage translation files, allowing the
// menu and the TUI to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// currentLang is the language code passed to the last Init call.
var currentLang string

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory. Unknown
// languages fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.ParseMessageFileBytes(data, f.Name())
	}

	if lang == "" {
		lang = "en"
	}
	currentLang = lang
	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message by its ID.
// If the i18n system has not been initialized, it will default to English.
// A single map argument is passed to the message template; any other
// arguments are applied to the translated text with fmt.Sprintf.
// If a translation for the given ID is not found, it returns the ID itself.
func T(messageID string, args ...interface{}) string {
	if localizer == nil {
		Init("en")
	}
	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]interface{}); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := localizer.Localize(cfg)
	if err != nil && msg == "" {
		// go-i18n reports unknown IDs as errors; fall back to the ID.
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return currentLang
}

// GetAvailableLocales returns the embedded language codes mapped to each
// language's own display name.
func GetAvailableLocales() map[string]string {
	if bundle == nil {
		Init("en")
	}
	out := make(map[string]string)
	for _, tag := range bundle.LanguageTags() {
		code := tag.String()
		name, err := i18n.NewLocalizer(bundle, code).Localize(&i18n.LocalizeConfig{MessageID: "language.self_name"})
		if err != nil || name == "" {
			name = code
		}
		out[code] = name
	}
	return out
}
