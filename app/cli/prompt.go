package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

const promptText = "search> "

// LineReader yields input lines without their trailing newline. It returns io.EOF when input ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScannerReader(in io.Reader, out io.Writer) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scannerReader) Close() error {
	return nil
}

// linerReader adds history and tab completion when attached to a terminal.
type linerReader struct {
	state *liner.State
}

func newLinerReader(completer func(string) []string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completer)

	if f, err := os.Open(historyFile()); err == nil {
		state.ReadHistory(f)
		f.Close()
	}

	return &linerReader{state: state}
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}

	if line != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	if path := historyFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			r.state.WriteHistory(f)
			f.Close()
		}
	}
	return r.state.Close()
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blog_search_history")
}

// newLineReader picks liner for an interactive terminal and a plain scanner otherwise.
func newLineReader(in io.Reader, out io.Writer, completer func(string) []string) LineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		return newLinerReader(completer)
	}
	return newScannerReader(in, out)
}

// RunInteractive drives session from reader until input ends or the session quits.
func RunInteractive(session *Session, reader LineReader, out io.Writer) error {
	defer reader.Close()

	fmt.Fprintln(out, "Blog search. Type :help for commands.")
	session.render()

	for {
		line, err := reader.ReadLine(promptText)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if !session.Handle(line) {
			return nil
		}
	}
}
