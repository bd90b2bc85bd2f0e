package drill

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	KanaTitle  = "五十音图默写练习"
	VocabTitle = "日语单词练习"
)

var ErrNoItems = errors.New("nothing to practice: select at least one kana row or load a word list")

// Question is one numbered line of a sheet.
type Question struct {
	Number int
	Prompt
}

type Sheet struct {
	ID          string
	Title       string
	Direction   Direction
	Questions   []Question
	GeneratedAt time.Time
}

// Options controls how a sheet is drawn from a list of items.
type Options struct {
	Direction Direction
	Shuffle   bool
	// Count limits the number of questions; 0 means all items.
	Count int
	Title string
	Rand  *rand.Rand
	Now   func() time.Time
}

func (s Sheet) Len() int {
	return len(s.Questions)
}

// Generate builds a sheet from items. The slice passed in is not modified.
func Generate(items []Item, opts Options) (Sheet, error) {
	if len(items) == 0 {
		return Sheet{}, ErrNoItems
	}
	if opts.Count < 0 {
		return Sheet{}, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}
	if !opts.Direction.IsKana() && !opts.Direction.IsVocab() {
		return Sheet{}, fmt.Errorf("unknown direction %q", opts.Direction)
	}

	selected := Pick(items, opts.Count, opts.Shuffle, opts.Rand)

	questions := make([]Question, 0, len(selected))
	for i, item := range selected {
		prompt, err := PromptFor(item, opts.Direction)
		if err != nil {
			return Sheet{}, fmt.Errorf("question %d: %w", i+1, err)
		}
		questions = append(questions, Question{Number: i + 1, Prompt: prompt})
	}

	title := opts.Title
	if title == "" {
		title = VocabTitle
		if opts.Direction.IsKana() {
			title = KanaTitle
		}
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	return Sheet{
		ID:          uuid.New().String(),
		Title:       title,
		Direction:   opts.Direction,
		Questions:   questions,
		GeneratedAt: now(),
	}, nil
}
