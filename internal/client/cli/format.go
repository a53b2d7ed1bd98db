package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notemark/internal/client/models"
	"github.com/dmitrijs2005/notemark/internal/markdown"
)

const (
	shortIDLen     = 8
	snippetRunes   = 60
	maxListedTags  = 2
	listDateLayout = "Jan 2, 2006"
	fullDateLayout = "Jan 2, 2006 15:04"
)

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// tagSummary names the first tags and counts the rest: "Red, Blue +2".
func tagSummary(tags []models.Tag) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, maxListedTags)
	for i, t := range tags {
		if i == maxListedTags {
			break
		}
		names = append(names, t.Name)
	}
	s := strings.Join(names, ", ")
	if extra := len(tags) - maxListedTags; extra > 0 {
		s += fmt.Sprintf(" +%d", extra)
	}
	return s
}

func noteLine(st models.State, n models.Note) string {
	marker := " "
	if n.ID == st.ActiveNoteID {
		marker = "*"
	}
	line := fmt.Sprintf("%s %-8s  %-30s  %-12s  %s",
		marker, shortID(n.ID), n.Title, n.UpdatedAt.Local().Format(listDateLayout),
		markdown.Snippet(singleLine(n.Content), snippetRunes))
	if tags := tagSummary(st.NoteTags(n.ID)); tags != "" {
		line += "  [" + tags + "]"
	}
	return line
}

func noteDetails(st models.State, n models.Note) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", n.Title)
	fmt.Fprintf(&b, "  id:       %s\n", n.ID)
	if f, ok := st.Folder(n.FolderID); ok {
		fmt.Fprintf(&b, "  folder:   %s\n", f.Name)
	}
	if tags := st.NoteTags(n.ID); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, t := range tags {
			names = append(names, fmt.Sprintf("%s (%s)", t.Name, t.Color))
		}
		fmt.Fprintf(&b, "  tags:     %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "  created:  %s\n", n.CreatedAt.Local().Format(fullDateLayout))
	fmt.Fprintf(&b, "  updated:  %s\n", n.UpdatedAt.Local().Format(fullDateLayout))
	if n.Content == "" {
		b.WriteString("\n(empty)\n")
		return b.String()
	}
	fmt.Fprintf(&b, "  heading:  %s\n", markdown.ExtractTitle(n.Content))
	fmt.Fprintf(&b, "  preview:  %s\n", markdown.ExtractPreview(n.Content))
	b.WriteString("\n")
	b.WriteString(n.Content)
	b.WriteString("\n")
	return b.String()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
