// Package textnorm provides pure, stateless transformations for Arabic
// and mixed Arabic/English text. All functions are total over any
// Unicode input and never fail.
package textnorm

import "strings"

// Arabic combining diacritics (tashkeel) occupy U+064B-U+065F plus the
// superscript alef U+0670. Tatweel (kashida) is the elongation
// character U+0640.
const (
	diacriticLo     = 0x064B
	diacriticHi     = 0x065F
	superscriptAlef = 0x0670
	tatweel         = 0x0640
)

// Alef variants collapse to bare Alef, Teh Marbuta to Heh.
var letterFolds = map[rune]rune{
	'آ': 'ا', // Alef with madda above
	'أ': 'ا', // Alef with hamza above
	'إ': 'ا', // Alef with hamza below
	'ٱ': 'ا', // Alef wasla
	'ة': 'ه', // Teh Marbuta -> Heh
}

// NormalizeArabic strips diacritics and tatweel and canonicalizes
// letter variants. Idempotent.
func NormalizeArabic(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r >= diacriticLo && r <= diacriticHi) || r == superscriptAlef || r == tatweel {
			continue
		}
		if folded, ok := letterFolds[r]; ok {
			r = folded
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeNumbers transliterates digits. With toArabic true, Latin 0-9
// become Arabic-Indic digits; with toArabic false, both Arabic-Indic
// and Eastern Arabic-Indic (Persian/Urdu) digits become Latin 0-9.
// Everything else passes through unchanged; no grouping or locale
// logic is applied.
func NormalizeNumbers(text string, toArabic bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(normalizeDigit(r, toArabic))
	}
	return b.String()
}

func normalizeDigit(r rune, toArabic bool) rune {
	if toArabic {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0') // ٠-٩
		}
		return r
	}
	if r >= '٠' && r <= '٩' { // Arabic-Indic ٠-٩
		return '0' + (r - '٠')
	}
	if r >= '۰' && r <= '۹' { // Eastern Arabic-Indic ۰-۹
		return '0' + (r - '۰')
	}
	return r
}

// Normalize applies Arabic normalization, digit normalization, trims
// leading/trailing whitespace and collapses whitespace runs to a
// single space, in that order.
func Normalize(text string, numbersToArabic bool) string {
	normalized := NormalizeArabic(text)
	normalized = NormalizeNumbers(normalized, numbersToArabic)
	return strings.Join(strings.Fields(normalized), " ")
}

// ContainsArabic reports whether the text has any code point in the
// Arabic block (U+0600-U+06FF).
func ContainsArabic(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// ContainsEnglish reports whether the text has any ASCII letter.
func ContainsEnglish(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// DetectLanguages returns the language codes present in the text, "ar"
// always ordered before "en" for determinism.
func DetectLanguages(text string) []string {
	var languages []string
	if ContainsArabic(text) {
		languages = append(languages, "ar")
	}
	if ContainsEnglish(text) {
		languages = append(languages, "en")
	}
	return languages
}
