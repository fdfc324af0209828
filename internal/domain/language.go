package domain

import "fmt"

// Language is a column key of the vocabulary table
type Language string

const (
	English Language = "English"
	German  Language = "German"
	French  Language = "French"
	Russian Language = "Russian"
)

// Languages lists every column a vocabulary source must provide, in column order
var Languages = []Language{English, German, French, Russian}

// StudyLanguages are the languages a card can be drawn in.
// Russian is always the translation side.
var StudyLanguages = []Language{English, German, French}

// ParseLanguage converts a column or button name into a Language
func ParseLanguage(s string) (Language, error) {
	for _, lang := range Languages {
		if string(lang) == s {
			return lang, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", s)
}
