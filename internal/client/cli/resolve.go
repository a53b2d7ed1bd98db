package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous reference")
	ErrNoActive  = errors.New("no active note")
	ErrEmptyName = errors.New("name is empty")
)

// ref is an entity as the user can refer to it: by id, id prefix or name.
type ref struct {
	id, name string
}

// resolve finds the entity ref points at. An exact id wins, then a unique
// id prefix, then a unique case-insensitive name.
func resolve(kind string, items []ref, s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%s %q: %w", kind, s, ErrNotFound)
	}

	var byPrefix, byName []string
	for _, it := range items {
		if it.id == s {
			return it.id, nil
		}
		if strings.HasPrefix(it.id, s) {
			byPrefix = append(byPrefix, it.id)
		}
		if it.name != "" && strings.EqualFold(it.name, s) {
			byName = append(byName, it.id)
		}
	}

	for _, matches := range [][]string{byPrefix, byName} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return "", fmt.Errorf("%s %q matches %d entries: %w", kind, s, len(matches), ErrAmbiguous)
		}
	}
	return "", fmt.Errorf("%s %q: %w", kind, s, ErrNotFound)
}

func resolveNote(st models.State, s string) (string, error) {
	items := make([]ref, 0, len(st.Notes))
	for _, n := range st.Notes {
		items = append(items, ref{id: n.ID})
	}
	return resolve("note", items, s)
}

// resolveNoteOrActive treats "" as the active note.
func resolveNoteOrActive(st models.State, s string) (string, error) {
	if s != "" {
		return resolveNote(st, s)
	}
	if _, ok := st.ActiveNote(); !ok {
		return "", ErrNoActive
	}
	return st.ActiveNoteID, nil
}

func resolveFolder(st models.State, s string) (string, error) {
	items := make([]ref, 0, len(st.Folders))
	for _, f := range st.Folders {
		items = append(items, ref{id: f.ID, name: f.Name})
	}
	return resolve("folder", items, s)
}

func resolveTag(st models.State, s string) (string, error) {
	items := make([]ref, 0, len(st.Tags))
	for _, t := range st.Tags {
		items = append(items, ref{id: t.ID, name: t.Name})
	}
	return resolve("tag", items, s)
}

func parseColor(s string) (models.Color, error) {
	c := models.Color(strings.ToLower(s))
	if !c.Valid() {
		names := make([]string, 0, len(models.Palette()))
		for _, p := range models.Palette() {
			names = append(names, string(p))
		}
		return "", fmt.Errorf("unknown color %q, pick one of: %s", s, strings.Join(names, ", "))
	}
	return c, nil
}
