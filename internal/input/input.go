// Package input contains identifiers used in getting token stream input for
// a recognizer from the CLI or other sources of input.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

// TokenReader is the contract both readers below satisfy, and the one the
// CLI depends on: Next returns the next terminal name read from the
// underlying stream, or registry.End once the stream is exhausted.
// TokenReader is a direct implementation of parse.TokenSource; it lives
// here rather than in package parse so that parse need not import readline
// or bufio.
type TokenReader interface {
	Next() string
	Close() error
}

// DirectTokenReader implements TokenReader and reads terminal names as
// whitespace-separated words from any generic input stream. It can be used
// generically with any io.Reader but does not sanitize the input of control
// and escape sequences, and is meant for piped or redirected input rather
// than an interactive TTY.
//
// DirectTokenReader should not be used directly; instead, create one with
// [NewDirectSource].
type DirectTokenReader struct {
	sc  *bufio.Scanner
	reg *registry.Registry
}

// NewDirectSource creates a new DirectTokenReader and initializes a
// word-scanning reader on the provided reader. reg is carried along rather
// than consulted here; it is the same registry the recognizer's table was
// built from, kept on the reader so future callers (a --validate-tokens
// style flag, say) have it on hand without re-threading it through the CLI.
func NewDirectSource(r io.Reader, reg *registry.Registry) *DirectTokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &DirectTokenReader{sc: sc, reg: reg}
}

// Close cleans up resources associated with the DirectTokenReader.
func (dtr *DirectTokenReader) Close() error {
	// this function is here so DirectTokenReader implements TokenReader.
	// For now it doesn't really do anything as the DirectTokenReader does
	// not create resources but it may in the future and callers should
	// treat it as though it must have Close called on it.
	return nil
}

// Next reads and returns the next whitespace-delimited token. At end of
// input or on a read error, Next returns registry.End.
func (dtr *DirectTokenReader) Next() string {
	if !dtr.sc.Scan() {
		return registry.End
	}
	return dtr.sc.Text()
}

// InteractiveTokenReader implements TokenReader and reads terminal names
// from stdin using a Go implementation of the GNU Readline library. This
// keeps input clear of all typing and editing escape sequences and enables
// the use of input history. This should in general probably only be used
// when directly connecting to a TTY for input.
//
// InteractiveTokenReader should not be used directly; instead, create one
// with [NewInteractiveSource].
type InteractiveTokenReader struct {
	rl      *readline.Instance
	reg     *registry.Registry
	pending []string
	atEOF   bool
}

// NewInteractiveSource creates a new InteractiveTokenReader and initializes
// readline. The returned InteractiveTokenReader must have Close called on it
// before disposal to properly tear down readline resources.
func NewInteractiveSource(reg *registry.Registry) (*InteractiveTokenReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "token> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveTokenReader{rl: rl, reg: reg}, nil
}

// Close cleans up readline resources associated with the
// InteractiveTokenReader.
func (itr *InteractiveTokenReader) Close() error {
	return itr.rl.Close()
}

// Next returns the next token typed by the user. A line with more than one
// whitespace-separated token is handed out one token at a time before
// readline is asked for another line. Once readline reaches EOF (Ctrl-D),
// Next returns registry.End on every subsequent call.
func (itr *InteractiveTokenReader) Next() string {
	for len(itr.pending) == 0 {
		if itr.atEOF {
			return registry.End
		}

		line, err := itr.rl.Readline()
		if err != nil {
			itr.atEOF = true
			return registry.End
		}

		sc := bufio.NewScanner(strings.NewReader(line))
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			itr.pending = append(itr.pending, sc.Text())
		}
	}

	tok := itr.pending[0]
	itr.pending = itr.pending[1:]
	return tok
}
