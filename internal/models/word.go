package models

// WordType distinguishes single words from multi-word phrases.
type WordType string

const (
	WordTypeWord   WordType = "word"
	WordTypePhrase WordType = "phrase"
)

// Word is a single vocabulary entry owned by a user. MasteryLevel stays in
// [0,5]; TimesCorrect counts consecutive correct answers since the last miss.
// IsMastered is derived from TimesCorrect and is recomputed on every review,
// never set directly.
type Word struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Term         string   `json:"term"`
	Translation  string   `json:"translation"`
	Phonetic     string   `json:"phonetic,omitempty"`
	Category     string   `json:"category"`
	Type         WordType `json:"type"`
	MasteryLevel int      `json:"mastery_level"`
	TimesCorrect int      `json:"times_correct"`
	IsMastered   bool     `json:"is_mastered"`
	LastReviewed int64    `json:"last_reviewed"` // epoch millis, 0 = never reviewed
	CreatedAt    int64    `json:"created_at"`    // epoch millis
}

// WordFilter narrows word listings. Zero values mean "no constraint".
type WordFilter struct {
	Category string
	Type     string
	Mastered *bool
	Search   string
	Limit    int
	Offset   int
}
