// Package models defines the NoteMark entities and the immutable store
// state built from them.
package models

import "time"

// DefaultNoteTitle is the title a freshly created note starts with.
const DefaultNoteTitle = "Untitled Note"

// Note is a markdown document filed under exactly one folder.
type Note struct {
	ID      string
	Title   string
	Content string
	// FolderID references the owning Folder.
	FolderID string
	// TagIDs is a set: no duplicates, order carries no meaning.
	TagIDs    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTag reports whether tagID is in the note's tag set.
func (n Note) HasTag(tagID string) bool {
	for _, id := range n.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Folder groups notes.
type Folder struct {
	ID   string
	Name string
}

// Tag labels notes with a name and a palette color.
type Tag struct {
	ID    string
	Name  string
	Color Color
}

// Color is one of the fixed tag palette entries.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
	ColorPurple Color = "purple"
)

var palette = []Color{ColorBlue, ColorGreen, ColorYellow, ColorOrange, ColorPink, ColorPurple}

// Palette returns the tag colors in display order.
func Palette() []Color {
	return append([]Color(nil), palette...)
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	for _, p := range palette {
		if c == p {
			return true
		}
	}
	return false
}
