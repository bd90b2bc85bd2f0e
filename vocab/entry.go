package vocab

// Entry is one normalized vocabulary record extracted from a user workbook.
type Entry struct {
	ID            int
	SourceTerm    string
	TargetTerm    string
	Pronunciation *string
	Example       *string
}

// HasPronunciation reports whether the source file provided a pronunciation.
func (e Entry) HasPronunciation() bool {
	return e.Pronunciation != nil && *e.Pronunciation != ""
}

func (e Entry) HasExample() bool {
	return e.Example != nil && *e.Example != ""
}

// WithPronunciation returns a copy of the entry carrying the given pronunciation.
func (e Entry) WithPronunciation(value string) Entry {
	out := e
	out.Pronunciation = &value
	return out
}

func Text(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
