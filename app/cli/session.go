package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/lysyi3m/blog-search/app/post"
)

// Session is the state of an interactive search: the dataset, its derived
// options and the current criteria. Every change re-runs the filter.
type Session struct {
	items         []post.Item
	options       post.Options
	criteria      post.Criteria
	filterer      *post.Filterer
	previewLength int
	out           io.Writer
}

func NewSession(dataset *post.Dataset, previewLength int, out io.Writer) *Session {
	items := dataset.All()
	return &Session{
		items:         items,
		options:       post.DeriveOptions(items),
		filterer:      post.NewFilterer(),
		previewLength: previewLength,
		out:           out,
	}
}

func (s *Session) Criteria() post.Criteria {
	return s.criteria
}

func (s *Session) Options() post.Options {
	return s.options
}

// Results returns the items matching the current criteria.
func (s *Session) Results() []post.Item {
	return s.filterer.Run(s.items, s.criteria)
}

// Handle applies one input line. Plain text replaces the search term verbatim
// and an empty line clears it; lines starting with ':' are commands.
// It reports false once the session should end.
func (s *Session) Handle(line string) bool {
	if !strings.HasPrefix(line, ":") {
		s.criteria.SearchTerm = line
		s.render()
		return true
	}

	name, arg := splitCommand(strings.TrimPrefix(line, ":"))

	switch strings.ToLower(name) {
	case "category", "c":
		if arg != "" && !slices.Contains(s.options.Categories, arg) {
			fmt.Fprintf(s.out, "Unknown category: %s\n", arg)
			return true
		}
		s.criteria.Category = arg
		s.render()

	case "author", "a":
		if arg != "" && !slices.Contains(s.options.Authors, arg) {
			fmt.Fprintf(s.out, "Unknown author: %s\n", arg)
			return true
		}
		s.criteria.Author = arg
		s.render()

	case "reset", "r":
		s.criteria = s.criteria.Reset()
		s.render()

	case "options", "o":
		printOptions(s.out, s.options)

	case "help", "h", "?":
		s.printHelp()

	case "quit", "q", "exit":
		fmt.Fprintln(s.out, "Bye!")
		return false

	default:
		fmt.Fprintf(s.out, "Unknown command: :%s (type :help for commands)\n", name)
	}

	return true
}

// splitCommand separates the command name from its argument at the first whitespace.
func splitCommand(body string) (string, string) {
	i := strings.IndexFunc(body, unicode.IsSpace)
	if i < 0 {
		return body, ""
	}
	return body[:i], strings.TrimSpace(body[i:])
}

func (s *Session) render() {
	fmt.Fprintf(s.out, "Filters: %s\n\n", describeCriteria(s.criteria))
	printResults(s.out, s.Results(), s.previewLength)
	s.logExclusions()
}

func (s *Session) logExclusions() {
	if !s.criteria.Active() || !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	for _, item := range s.items {
		if reason := s.filterer.Explain(item, s.criteria); reason != "" {
			slog.Debug("Post excluded", "id", item.ID, "reason", reason)
		}
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, "Type text to search titles and content; an empty line clears the search.")
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  :category NAME   filter by category (no name clears)")
	fmt.Fprintln(s.out, "  :author NAME     filter by author (no name clears)")
	fmt.Fprintln(s.out, "  :reset           clear all filters")
	fmt.Fprintln(s.out, "  :options         list categories and authors")
	fmt.Fprintln(s.out, "  :help            show this help")
	fmt.Fprintln(s.out, "  :quit            exit")
}

// complete offers command names and option values for tab completion.
func (s *Session) complete(line string) []string {
	var candidates []string

	for _, group := range []struct {
		prefix string
		values []string
	}{
		{":category ", s.options.Categories},
		{":author ", s.options.Authors},
	} {
		if strings.HasPrefix(line, group.prefix) {
			partial := strings.TrimPrefix(line, group.prefix)
			for _, value := range group.values {
				if strings.HasPrefix(strings.ToLower(value), strings.ToLower(partial)) {
					candidates = append(candidates, group.prefix+value)
				}
			}
			return candidates
		}
	}

	if strings.HasPrefix(line, ":") {
		for _, command := range []string{":category ", ":author ", ":reset", ":options", ":help", ":quit"} {
			if strings.HasPrefix(command, line) {
				candidates = append(candidates, command)
			}
		}
	}

	return candidates
}
