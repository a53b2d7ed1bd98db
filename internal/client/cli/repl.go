package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording fake. Id arguments may be unique prefixes, "-"
// clears a filter.
type execIface interface {
	List(ctx context.Context) error
	NewNote(ctx context.Context, title string) error
	OpenNote(ctx context.Context, id string) error
	ShowNote(ctx context.Context, id string) error
	SetTitle(ctx context.Context, id, title string) error
	EditNote(ctx context.Context, id string) error
	MoveNote(ctx context.Context, id, folderID string) error
	DeleteNote(ctx context.Context, id string) error

	Folders(ctx context.Context) error
	MakeFolder(ctx context.Context, name string) error
	RenameFolder(ctx context.Context, id, name string) error
	DeleteFolder(ctx context.Context, id string) error
	FilterFolder(ctx context.Context, id string) error

	Tags(ctx context.Context) error
	MakeTag(ctx context.Context, color, name string) error
	RenameTag(ctx context.Context, id, name string) error
	RecolorTag(ctx context.Context, id, color string) error
	DeleteTag(ctx context.Context, id string) error
	TagNote(ctx context.Context, noteID, tagID string) error
	UntagNote(ctx context.Context, noteID, tagID string) error
	FilterTag(ctx context.Context, id string) error
	SuggestTags(ctx context.Context, noteID, query string) error

	Search(ctx context.Context, query string) error
	ClearSearch(ctx context.Context) error
	Reset(ctx context.Context) error
	Export(ctx context.Context, dir string) error
}

const helpText = `Notes:    ls, new [title], open <id>, show [id], title <id> <text>, edit <id>, mv <id> <folder>, rm <id>
Folders:  folders, mkfolder <name>, rnfolder <id> <name>, rmfolder <id>, folder <id|->
Tags:     tags, mktag <color> <name>, rntag <id> <name>, color <id> <color>, rmtag <id>,
          tag <note> <tag>, untag <note> <tag>, filter <tag|->, suggest <note> [query]
Search:   search <text>, clear, reset
Other:    export <dir>, help, exit`

// usage maps a command to its argument synopsis, for commands that need
// arguments.
var usage = map[string]string{
	"open":     "open <id>",
	"title":    "title <id> <text>",
	"edit":     "edit <id>",
	"mv":       "mv <id> <folder>",
	"rm":       "rm <id>",
	"mkfolder": "mkfolder <name>",
	"rnfolder": "rnfolder <id> <name>",
	"rmfolder": "rmfolder <id>",
	"folder":   "folder <id|->",
	"mktag":    "mktag <color> <name>",
	"rntag":    "rntag <id> <name>",
	"color":    "color <id> <color>",
	"rmtag":    "rmtag <id>",
	"tag":      "tag <note> <tag>",
	"untag":    "untag <note> <tag>",
	"filter":   "filter <tag|->",
	"suggest":  "suggest <note> [query]",
	"search":   "search <text>",
	"export":   "export <dir>",
}

// minArgs is the number of arguments each command requires. For commands
// taking free text (names, titles, queries) the last argument is the rest
// of the line.
var minArgs = map[string]int{
	"open": 1, "title": 2, "edit": 1, "mv": 2, "rm": 1,
	"mkfolder": 1, "rnfolder": 2, "rmfolder": 1, "folder": 1,
	"mktag": 2, "rntag": 2, "color": 2, "rmtag": 1,
	"tag": 2, "untag": 2, "filter": 1, "suggest": 1,
	"search": 1, "export": 1,
}

// splitArgs splits the text after the command into at most n fields; the
// last field keeps its inner spacing.
func splitArgs(rest string, n int) []string {
	var out []string
	rest = strings.TrimSpace(rest)
	for len(out) < n-1 && rest != "" {
		field, tail, _ := strings.Cut(rest, " ")
		out = append(out, field)
		rest = strings.TrimSpace(tail)
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}

type readResult struct {
	line string
	err  error
}

// lineReader reads one line from reader each time next is called. The read
// runs on its own goroutine so the caller can stop waiting when ctx is
// done; reader is never touched between calls, so handlers may read from
// it directly.
type lineReader struct {
	req chan struct{}
	res chan readResult
}

func newLineReader(reader *bufio.Reader) *lineReader {
	lr := &lineReader{req: make(chan struct{}), res: make(chan readResult, 1)}
	go func() {
		for range lr.req {
			line, err := reader.ReadString('\n')
			lr.res <- readResult{line: line, err: err}
		}
	}()
	return lr
}

func (lr *lineReader) next(ctx context.Context) (string, error) {
	lr.req <- struct{}{}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-lr.res:
		return r.line, r.err
	}
}

// close lets the reading goroutine exit once its pending read returns.
func (lr *lineReader) close() { close(lr.req) }

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is done, and dispatches them to a. The prompt shows statusFn().
// Errors returned by handlers are ignored here; handlers report their own
// failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	lines := newLineReader(reader)
	defer lines.close()

	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("nm%s> ", statusFn()))

		line, err := lines.next(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		if cmd == "" {
			continue
		}

		var args []string
		switch cmd {
		case "title", "rnfolder", "rntag", "mktag", "suggest":
			args = splitArgs(rest, 2)
		case "mkfolder", "search", "new":
			args = splitArgs(rest, 1)
		default:
			args = strings.Fields(rest)
		}
		if len(args) < minArgs[cmd] {
			printlnFn("Usage:", usage[cmd])
			continue
		}
		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "ls", "l", "list":
			_ = a.List(ctx)
		case "new":
			_ = a.NewNote(ctx, arg(0))
		case "open":
			_ = a.OpenNote(ctx, arg(0))
		case "show":
			_ = a.ShowNote(ctx, arg(0))
		case "title":
			_ = a.SetTitle(ctx, arg(0), arg(1))
		case "edit":
			_ = a.EditNote(ctx, arg(0))
		case "mv":
			_ = a.MoveNote(ctx, arg(0), arg(1))
		case "rm":
			_ = a.DeleteNote(ctx, arg(0))

		case "folders":
			_ = a.Folders(ctx)
		case "mkfolder":
			_ = a.MakeFolder(ctx, arg(0))
		case "rnfolder":
			_ = a.RenameFolder(ctx, arg(0), arg(1))
		case "rmfolder":
			_ = a.DeleteFolder(ctx, arg(0))
		case "folder":
			_ = a.FilterFolder(ctx, noneIfDash(arg(0)))

		case "tags":
			_ = a.Tags(ctx)
		case "mktag":
			_ = a.MakeTag(ctx, arg(0), arg(1))
		case "rntag":
			_ = a.RenameTag(ctx, arg(0), arg(1))
		case "color":
			_ = a.RecolorTag(ctx, arg(0), arg(1))
		case "rmtag":
			_ = a.DeleteTag(ctx, arg(0))
		case "tag":
			_ = a.TagNote(ctx, arg(0), arg(1))
		case "untag":
			_ = a.UntagNote(ctx, arg(0), arg(1))
		case "filter":
			_ = a.FilterTag(ctx, noneIfDash(arg(0)))
		case "suggest":
			_ = a.SuggestTags(ctx, arg(0), arg(1))

		case "search":
			_ = a.Search(ctx, arg(0))
		case "clear":
			_ = a.ClearSearch(ctx)
		case "reset":
			_ = a.Reset(ctx)

		case "export":
			_ = a.Export(ctx, arg(0))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

func noneIfDash(s string) string {
	if s == "-" {
		return ""
	}
	return s
}
