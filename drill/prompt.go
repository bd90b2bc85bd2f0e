package drill

import (
	"errors"
	"fmt"

	"kanadrill/vocab"
)

var ErrDirectionMismatch = errors.New("direction does not apply to item")

// Prompt is the question/answer view of one item under one direction.
type Prompt struct {
	Question      string
	Answer        string
	QuestionLabel string
	AnswerLabel   string
	Pronunciation string
	Example       string
}

// PromptFor maps an item to its question and answer. Kana directions only
// apply to kana items and vocabulary directions only to vocabulary items.
func PromptFor(item Item, dir Direction) (Prompt, error) {
	questionLabel, answerLabel := dir.Labels()
	prompt := Prompt{QuestionLabel: questionLabel, AnswerLabel: answerLabel}

	switch it := item.(type) {
	case KanaItem:
		char := it.Character
		switch dir {
		case RomajiToHiragana:
			prompt.Question, prompt.Answer = char.Romaji, char.Hiragana
		case RomajiToKatakana:
			prompt.Question, prompt.Answer = char.Romaji, char.Katakana
		case HiraganaToRomaji:
			prompt.Question, prompt.Answer = char.Hiragana, char.Romaji
		case KatakanaToRomaji:
			prompt.Question, prompt.Answer = char.Katakana, char.Romaji
		default:
			return Prompt{}, fmt.Errorf("%w: %q for kana %s", ErrDirectionMismatch, dir, char.Hiragana)
		}
	case VocabItem:
		entry := it.Entry
		switch dir {
		case JapaneseToChinese:
			prompt.Question, prompt.Answer = entry.SourceTerm, entry.TargetTerm
		case ChineseToJapanese:
			prompt.Question, prompt.Answer = entry.TargetTerm, entry.SourceTerm
		default:
			return Prompt{}, fmt.Errorf("%w: %q for word %s", ErrDirectionMismatch, dir, entry.SourceTerm)
		}
		prompt.Pronunciation = vocab.Text(entry.Pronunciation)
		prompt.Example = vocab.Text(entry.Example)
	default:
		return Prompt{}, fmt.Errorf("unsupported item type %T", item)
	}

	return prompt, nil
}
