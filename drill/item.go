package drill

import (
	"kanadrill/kana"
	"kanadrill/vocab"
)

// Item is one practicable unit. The set of variants is closed: KanaItem and
// VocabItem.
type Item interface {
	isItem()
}

type KanaItem struct {
	Character kana.Character
}

type VocabItem struct {
	Entry vocab.Entry
}

func (KanaItem) isItem()  {}
func (VocabItem) isItem() {}

func KanaItems(chars []kana.Character) []Item {
	items := make([]Item, 0, len(chars))
	for _, char := range chars {
		items = append(items, KanaItem{Character: char})
	}
	return items
}

func VocabItems(entries []vocab.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, VocabItem{Entry: entry})
	}
	return items
}
