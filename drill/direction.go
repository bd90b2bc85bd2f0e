package drill

import (
	"fmt"
	"strings"
)

// Direction names which side of an item is asked and which is answered.
type Direction string

const (
	RomajiToHiragana Direction = "romaji-to-hiragana"
	RomajiToKatakana Direction = "romaji-to-katakana"
	HiraganaToRomaji Direction = "hiragana-to-romaji"
	KatakanaToRomaji Direction = "katakana-to-romaji"

	JapaneseToChinese Direction = "jp-to-cn"
	ChineseToJapanese Direction = "cn-to-jp"
)

const (
	DefaultKanaDirection  = RomajiToHiragana
	DefaultVocabDirection = JapaneseToChinese
)

const (
	labelHiragana = "平假名"
	labelKatakana = "片假名"
	labelRomaji   = "罗马音"
	labelJapanese = "日语"
	labelChinese  = "中文"
)

var (
	kanaDirections  = []Direction{RomajiToHiragana, RomajiToKatakana, HiraganaToRomaji, KatakanaToRomaji}
	vocabDirections = []Direction{JapaneseToChinese, ChineseToJapanese}
)

func KanaDirections() []Direction {
	return append([]Direction(nil), kanaDirections...)
}

func VocabDirections() []Direction {
	return append([]Direction(nil), vocabDirections...)
}

// ParseDirection accepts any known direction name, case-insensitively.
func ParseDirection(value string) (Direction, error) {
	candidate := Direction(strings.ToLower(strings.TrimSpace(value)))
	if candidate.IsKana() || candidate.IsVocab() {
		return candidate, nil
	}
	return "", fmt.Errorf("unknown direction %q", value)
}

func (d Direction) IsKana() bool {
	for _, known := range kanaDirections {
		if d == known {
			return true
		}
	}
	return false
}

func (d Direction) IsVocab() bool {
	for _, known := range vocabDirections {
		if d == known {
			return true
		}
	}
	return false
}

// Labels returns the question and answer labels shown on a sheet.
func (d Direction) Labels() (question, answer string) {
	switch d {
	case RomajiToHiragana:
		return labelRomaji, labelHiragana
	case RomajiToKatakana:
		return labelRomaji, labelKatakana
	case HiraganaToRomaji:
		return labelHiragana, labelRomaji
	case KatakanaToRomaji:
		return labelKatakana, labelRomaji
	case JapaneseToChinese:
		return labelJapanese, labelChinese
	case ChineseToJapanese:
		return labelChinese, labelJapanese
	default:
		return "", ""
	}
}

// Caption renders the direction as "日语 → 中文".
func (d Direction) Caption() string {
	question, answer := d.Labels()
	if question == "" {
		return string(d)
	}
	return question + " → " + answer
}
