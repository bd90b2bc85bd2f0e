package drill

import (
	"math/rand/v2"
	"sync"

	"kanadrill/kana"
	"kanadrill/vocab"
)

// Session holds the current word list (or kana selection) and the last
// generated sheet. Each caller owns its own session.
type Session struct {
	mu    sync.Mutex
	items []Item
	words []vocab.Entry
	sheet *Sheet
	rng   *rand.Rand
}

// NewSession returns an empty session. rng may be nil.
func NewSession(rng *rand.Rand) *Session {
	return &Session{rng: rng}
}

// LoadWords replaces the current list in full and discards the current sheet.
func (s *Session) LoadWords(entries []vocab.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = append([]vocab.Entry(nil), entries...)
	s.items = VocabItems(s.words)
	s.sheet = nil
}

// SelectKana replaces the current list with the characters of the given rows.
func (s *Session) SelectKana(rows []string) error {
	chars, err := kana.Select(rows)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = nil
	s.items = KanaItems(chars)
	s.sheet = nil
	return nil
}

func (s *Session) Words() []vocab.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]vocab.Entry(nil), s.words...)
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sheet returns the current sheet, if one was generated since the last load.
func (s *Session) Sheet() (Sheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sheet == nil {
		return Sheet{}, false
	}
	return *s.sheet, true
}

// Regenerate draws a new sheet from the current list and keeps it as the
// current sheet. On error the previous sheet is left in place.
func (s *Session) Regenerate(opts Options) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if opts.Rand == nil {
		opts.Rand = s.rng
	}
	sheet, err := Generate(s.items, opts)
	if err != nil {
		return Sheet{}, err
	}
	s.sheet = &sheet
	return sheet, nil
}

// Reload draws a sheet from entries and hands it to publish. The list and
// sheet are replaced only when both steps succeed; otherwise the session
// keeps its previous state.
func (s *Session) Reload(entries []vocab.Entry, opts Options, publish func(Sheet) error) (Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	words := append([]vocab.Entry(nil), entries...)
	items := VocabItems(words)

	if opts.Rand == nil {
		opts.Rand = s.rng
	}
	sheet, err := Generate(items, opts)
	if err != nil {
		return Sheet{}, err
	}
	if publish != nil {
		if err := publish(sheet); err != nil {
			return Sheet{}, err
		}
	}

	s.words = words
	s.items = items
	s.sheet = &sheet
	return sheet, nil
}
