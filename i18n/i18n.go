// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package i18n localizes the messages this module prints. The
// translations live in embedded TOML catalogs, missing entries fall
// back to the message ID.
package i18n

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/Xuanwo/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	once      sync.Once
)

// Init selects the message language. Call it once at program startup.
// If lang is empty, the system locale is detected automatically.
func Init(lang string) {
	once.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			return
		}
		for _, entry := range entries {
			bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name())
		}
	})

	langs := []string{}
	if lang != "" {
		langs = append(langs, lang)
	} else {
		// POSIX order: LANGUAGE > LC_ALL > LC_MESSAGES > LANG
		if detected, err := locale.Detect(); err == nil {
			langs = append(langs, detected.String())
		}
	}

	localizer = i18n.NewLocalizer(bundle, langs...)
}

// T returns the translated string for the given message ID.
func T(messageID string) string {
	if localizer == nil {
		Init("")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// Tf returns the translated string with template data substitution.
func Tf(messageID string, data map[string]interface{}) string {
	if localizer == nil {
		Init("")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
