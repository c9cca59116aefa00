package models

import "strings"

// Language tags of the two primary languages. Any other tag is still a valid
// quote language, it just never gets the mascot prefix.
const (
	LanguageGerman  = "German"
	LanguageEnglish = "English"
)

// Quote represents a single stored fortune
type Quote struct {
	ID       int    `json:"id"`       // Assigned on insert, never reused
	Language string `json:"language"` // Free-text tag, matched exactly on lookup
	Text     string `json:"text"`
}

// GetID returns the quote ID (used by quiet CLI output)
func (q *Quote) GetID() int {
	return q.ID
}

// LanguageCount pairs a language tag with the number of quotes stored for it
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// IsPrimaryLanguage reports whether lang is German or English, ignoring case
func IsPrimaryLanguage(lang string) bool {
	return strings.EqualFold(lang, LanguageGerman) || strings.EqualFold(lang, LanguageEnglish)
}
