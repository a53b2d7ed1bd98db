// Package export writes notes out as markdown files with YAML front matter,
// one directory per folder.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/filex"
)

const (
	fileExt       = ".md"
	delimiter     = "---\n"
	unnamedFolder = "untitled"
	yamlIndent    = 2
)

var ErrNoFrontMatter = errors.New("missing front matter")

// Note is one exported file: the front matter fields plus the raw content.
type Note struct {
	ID        string    `yaml:"id"`
	Title     string    `yaml:"title"`
	Folder    string    `yaml:"folder"`
	Tags      []string  `yaml:"tags"`
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`
	Content   string    `yaml:"-"`
}

// WriteMarkdown writes every note of st to dir/<folder>/<note id>.md and
// returns how many files were written. Folders sharing a display name get
// their id appended to keep directories apart.
func WriteMarkdown(dir string, st models.State) (int, error) {
	dirs := folderDirs(st.Folders)
	tags := make(map[string]models.Tag, len(st.Tags))
	for _, t := range st.Tags {
		tags[t.ID] = t
	}

	written := 0
	for _, n := range st.Notes {
		folderDir := filepath.Join(dir, dirs[n.FolderID])
		if err := filex.EnsureDir(folderDir); err != nil {
			return written, err
		}

		out := Note{
			ID:        n.ID,
			Title:     n.Title,
			Tags:      make([]string, 0, len(n.TagIDs)),
			CreatedAt: n.CreatedAt.UTC(),
			UpdatedAt: n.UpdatedAt.UTC(),
			Content:   n.Content,
		}
		if f, ok := st.Folder(n.FolderID); ok {
			out.Folder = f.Name
		}
		for _, id := range n.TagIDs {
			if t, ok := tags[id]; ok {
				out.Tags = append(out.Tags, t.Name)
			}
		}

		path := filepath.Join(folderDir, filex.SafeName(n.ID, "note")+fileExt)
		if err := writeNote(path, out); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func folderDirs(folders []models.Folder) map[string]string {
	dirs := make(map[string]string, len(folders))
	used := make(map[string]bool, len(folders))
	for _, f := range folders {
		name := filex.SafeName(f.Name, unnamedFolder)
		if used[name] {
			name = filex.SafeName(name+"-"+f.ID, unnamedFolder)
		}
		used[name] = true
		dirs[f.ID] = name
	}
	return dirs
}

func writeNote(path string, n Note) error {
	var buf bytes.Buffer
	buf.WriteString(delimiter)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("failed to encode front matter for %s: %w", n.ID, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode front matter for %s: %w", n.ID, err)
	}

	buf.WriteString(delimiter)
	buf.WriteString("\n")
	buf.WriteString(n.Content)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadNote parses a file written by WriteMarkdown.
func ReadNote(path string) (Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Note{}, fmt.Errorf("read %s: %w", path, err)
	}

	rest, ok := bytes.CutPrefix(data, []byte(delimiter))
	if !ok {
		return Note{}, fmt.Errorf("%s: %w", path, ErrNoFrontMatter)
	}
	head, body, ok := cutClosing(rest)
	if !ok {
		return Note{}, fmt.Errorf("%s: %w", path, ErrNoFrontMatter)
	}

	var n Note
	if err := yaml.Unmarshal(head, &n); err != nil {
		return Note{}, fmt.Errorf("failed to parse front matter of %s: %w", path, err)
	}
	n.Content = string(bytes.TrimPrefix(body, []byte("\n")))
	return n, nil
}

// cutClosing splits at the first delimiter line, so "---" inside the
// content is left alone.
func cutClosing(b []byte) (head, body []byte, ok bool) {
	if rest, found := bytes.CutPrefix(b, []byte(delimiter)); found {
		return nil, rest, true
	}
	return bytes.Cut(b, []byte("\n"+delimiter))
}
