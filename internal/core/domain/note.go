package domain

import "time"

// Note is a raw study note fetched from a connector, before
// extraction turns it into a Topic.
type Note struct {
	// Path is the source location of the note.
	Path string

	// Title is the topic name derived from the source, typically the
	// file name without extension.
	Title string

	// Content is the full note text.
	Content string

	// ModTime is when the note was last modified at the source.
	ModTime time.Time
}
