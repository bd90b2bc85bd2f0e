package textutil

import (
	"strings"

	"golang.org/x/text/width"
)

// FoldLabel normalizes a header label for synonym matching: full-width
// latin letters become ASCII, half-width katakana become full-width, case
// is folded and surrounding whitespace is dropped.
func FoldLabel(input string) string {
	folded := width.Fold.String(strings.TrimSpace(input))
	return strings.ToLower(folded)
}

// ContainsLabel reports whether label contains any of the synonyms after folding.
func ContainsLabel(label string, synonyms []string) bool {
	folded := FoldLabel(label)
	if folded == "" {
		return false
	}
	for _, synonym := range synonyms {
		candidate := FoldLabel(synonym)
		if candidate == "" {
			continue
		}
		if strings.Contains(folded, candidate) {
			return true
		}
	}
	return false
}

// KatakanaToHiragana maps the katakana block onto hiragana and leaves every
// other rune untouched.
func KatakanaToHiragana(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'ァ' && r <= 'ヶ' {
			return r - ('ァ' - 'ぁ')
		}
		return r
	}, input)
}

// IsKana reports whether input consists only of hiragana, katakana and the
// prolonged sound mark.
func IsKana(input string) bool {
	if input == "" {
		return false
	}
	for _, r := range input {
		switch {
		case r >= 'ぁ' && r <= 'ゖ':
		case r >= 'ァ' && r <= 'ヺ':
		case r == 'ー':
		default:
			return false
		}
	}
	return true
}
