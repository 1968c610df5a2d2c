// Package locale resolves the game's {page,id} text references into
// display strings for the active language.
package locale

import "fmt"

// DefaultLanguage is the baseline language id (English). Translation
// loading falls back to it when the preferred language file is missing.
const DefaultLanguage = 44

// Languages maps the game's language ids to human-readable names.
var Languages = map[int]string{
	7:   "Russian",
	33:  "French",
	34:  "Spanish",
	39:  "Italian",
	42:  "Czech",
	44:  "English",
	48:  "Polish",
	49:  "German",
	55:  "Spanish (Latin America)",
	81:  "Japanese",
	82:  "Korean",
	86:  "Chinese (Simplified)",
	88:  "Chinese (Traditional)",
	90:  "Turkish",
	359: "Russian (Alternative)",
	380: "Russian (Alternative 2)",
}

// localeToLanguage maps POSIX-style locale codes to language ids.
var localeToLanguage = map[string]int{
	"en": 44, "en_US": 44, "en_GB": 44, "en_CA": 44, "en_AU": 44,
	"de": 49, "de_DE": 49, "de_AT": 49, "de_CH": 49,
	"fr": 33, "fr_FR": 33, "fr_CA": 33, "fr_BE": 33, "fr_CH": 33,
	"es": 34, "es_ES": 34, "es_MX": 55, "es_AR": 55, "es_CL": 55,
	"it": 39, "it_IT": 39,
	"ru": 7, "ru_RU": 7,
	"pl": 48, "pl_PL": 48,
	"cs": 42, "cs_CZ": 42,
	"tr": 90, "tr_TR": 90,
	"ja": 81, "ja_JP": 81,
	"ko": 82, "ko_KR": 82,
	"zh_CN": 86, "zh_Hans": 86,
	"zh_TW": 88, "zh_Hant": 88,
}

// storeToLanguage maps platform store language names to language ids.
var storeToLanguage = map[string]int{
	"english":  44,
	"german":   49,
	"french":   33,
	"spanish":  34,
	"italian":  39,
	"russian":  7,
	"polish":   48,
	"czech":    42,
	"turkish":  90,
	"japanese": 81,
	"korean":   82,
	"schinese": 86,
	"tchinese": 88,
}

// FileName returns the translation file name for a language id,
// e.g. 44 -> "0001-l044.xml".
func FileName(id int) string {
	return fmt.Sprintf("0001-l%03d.xml", id)
}

// LanguageName returns the display name for a language id.
func LanguageName(id int) string {
	if name, ok := Languages[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (ID: %d)", id)
}
