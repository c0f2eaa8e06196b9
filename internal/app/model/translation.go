package model

// TargetLanguage names a translation target offered to the learner.
type TargetLanguage string

const (
	LanguageEnglish   TargetLanguage = "English"
	LanguageChinese   TargetLanguage = "Chinese (Simplified)"
	LanguageUkrainian TargetLanguage = "Ukrainian"
	LanguageSpanish   TargetLanguage = "Spanish"
	LanguageGerman    TargetLanguage = "German"
)

// SupportedLanguages lists the translation targets in presentation order.
var SupportedLanguages = []TargetLanguage{
	LanguageEnglish,
	LanguageChinese,
	LanguageUkrainian,
	LanguageSpanish,
	LanguageGerman,
}

// IsSupportedLanguage reports whether lang is an offered translation target.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if string(l) == lang {
			return true
		}
	}
	return false
}

// TranslationResult is the ephemeral outcome of translating one transcript
// segment. Results are never cached; every request produces a fresh one.
type TranslationResult struct {
	Original         string `json:"original"`
	Translation      string `json:"translation"`
	Notes            string `json:"notes"`
	DetectedLanguage string `json:"detectedLanguage"`
}
