// Package locale holds the two UI languages and their label tables.
// File: locale/locale.go
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"ycfl-league/models"
)

// Lang is a UI language code.
type Lang string

const (
	Arabic  Lang = "ar"
	Chinese Lang = "zh"

	Default = Arabic
)

var (
	supported = []language.Tag{language.Arabic, language.Chinese}
	matcher   = language.NewMatcher(supported)
)

// Parse accepts "ar" or "zh" in any case.
func Parse(raw string) (Lang, bool) {
	switch l := Lang(strings.ToLower(strings.TrimSpace(raw))); l {
	case Arabic, Chinese:
		return l, true
	}
	return "", false
}

// Negotiate picks a language from an Accept-Language header, falling back to Default.
func Negotiate(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	if supported[idx] == language.Chinese {
		return Chinese
	}
	return Arabic
}

// Dir is the text direction for the html dir attribute.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Toggle returns the other language.
func (l Lang) Toggle() Lang {
	if l == Arabic {
		return Chinese
	}
	return Arabic
}

// Strings returns the label table for l.
func (l Lang) Strings() *Strings {
	if l == Chinese {
		return &zh
	}
	return &ar
}

// TeamName picks the team's display name for l.
func (l Lang) TeamName(t models.Team) string {
	if l == Chinese {
		return t.NameZh
	}
	return t.NameAr
}

// StatLabels returns the six stat labels in models.PlayerStats order.
func (l Lang) StatLabels() [6]string {
	return l.Strings().Stats
}
