// Copyright (c) 2026 Quadsolver Team
// Quadsolver - quadratic equation solver
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for
// Quadsolver. It uses the go-i18n library to load the embedded translation
// files so prompts and reports can be shown in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

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
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
)

// Init initializes the bundle and sets up the localizer for lang. Unknown
// languages fall back to English through go-i18n's matcher.
func Init(l string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	localizer = i18n.NewLocalizer(bundle, l)
	lang = l
}

// GetLang returns the language passed to the last Init.
func GetLang() string {
	if localizer == nil {
		Init("en")
	}
	return lang
}

// IsSupported reports whether a locale file exists for l.
func IsSupported(l string) bool {
	_, ok := GetAvailableLocales()[l]
	return ok
}

// GetAvailableLocales maps every embedded locale code to the language's
// name in that language.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		tag, err := language.Parse(code)
		if err != nil {
			out[code] = code
			continue
		}
		name := display.Self.Name(tag)
		if name == "" {
			name = code
		}
		out[code] = name
	}
	return out
}

// LocaleCodes returns the embedded locale codes sorted alphabetically.
func LocaleCodes() []string {
	av := GetAvailableLocales()
	codes := make([]string, 0, len(av))
	for code := range av {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// T translates messageID. A single map argument is used as template data;
// any other arguments are applied to the translated text with fmt.Sprintf.
// Unknown IDs translate to the ID itself.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil && msg == "" {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
