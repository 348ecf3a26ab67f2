package domain

import "time"

// Note is a free-text comment with a creation timestamp.
// Notes are append-only: never edited, never reordered.
type Note struct {
	Text      string
	Timestamp time.Time
}

func NewNote(text string) Note {
	return Note{Text: text, Timestamp: time.Now().UTC()}
}
