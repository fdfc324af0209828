package domain

import "fmt"

// Entry is one vocabulary row
type Entry struct {
	English string
	German  string
	French  string
	Russian string
}

// Value returns the word for the given language.
// Panics on a language outside Languages: that is a caller bug, not a data condition.
func (e Entry) Value(lang Language) string {
	switch lang {
	case English:
		return e.English
	case German:
		return e.German
	case French:
		return e.French
	case Russian:
		return e.Russian
	}
	panic(fmt.Sprintf("domain: unknown language %q", lang))
}

// Set assigns the word for the given language
func (e *Entry) Set(lang Language, value string) {
	switch lang {
	case English:
		e.English = value
	case German:
		e.German = value
	case French:
		e.French = value
	case Russian:
		e.Russian = value
	default:
		panic(fmt.Sprintf("domain: unknown language %q", lang))
	}
}

// MissingLanguage returns the first language with an empty value, if any
func (e Entry) MissingLanguage() (Language, bool) {
	for _, lang := range Languages {
		if e.Value(lang) == "" {
			return lang, true
		}
	}
	return "", false
}

// Card is a word-translation pair ready for display
type Card struct {
	Language    Language
	Word        string
	Translation string
}
