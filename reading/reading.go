// Package reading looks up hiragana readings for Japanese vocabulary terms.
package reading

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"kanadrill/internal/textutil"
	"kanadrill/vocab"
)

// IPA features: index 7 holds the katakana reading.
const featureReading = 7

// Lookup returns the hiragana reading of a term, or "" when it is unknown.
type Lookup interface {
	Reading(text string) string
}

// Annotator resolves readings with the kagome morphological analyzer.
type Annotator struct {
	t *tokenizer.Tokenizer
}

func NewAnnotator() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Reading concatenates the readings of every token of text. If any token
// outside the kana range has no dictionary reading the whole term is
// treated as unknown.
func (a *Annotator) Reading(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, token := range a.t.Tokenize(text) {
		if strings.TrimSpace(token.Surface) == "" {
			continue
		}
		if token.Class == tokenizer.DUMMY {
			return ""
		}

		features := token.Features()
		switch {
		case len(features) > featureReading && features[featureReading] != "*":
			out.WriteString(features[featureReading])
		case textutil.IsKana(token.Surface):
			out.WriteString(token.Surface)
		default:
			return ""
		}
	}
	return textutil.KatakanaToHiragana(out.String())
}

// Fill returns a copy of entries where absent pronunciations are set from
// lookup. Entries that already carry a pronunciation are kept as they are,
// and readings identical to the term itself are not recorded.
func Fill(entries []vocab.Entry, lookup Lookup) ([]vocab.Entry, int) {
	out := make([]vocab.Entry, len(entries))
	filled := 0
	for i, entry := range entries {
		out[i] = entry
		if entry.HasPronunciation() {
			continue
		}
		reading := lookup.Reading(entry.SourceTerm)
		if reading == "" || reading == textutil.KatakanaToHiragana(entry.SourceTerm) {
			continue
		}
		out[i] = entry.WithPronunciation(reading)
		filled++
	}
	return out, filled
}
