package input

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ccrownhill/parsing-from-scratch/internal/registry"
)

// Select picks a TokenReader for stdin: interactive (readline) when stdin is
// an actual terminal, direct (whitespace-scanned) when it is piped or
// redirected. force, when true, always picks the direct reader regardless
// of what stdin is, the same override the teacher CLI's --direct flag gave
// for its command reader.
func Select(reg *registry.Registry, force bool) (TokenReader, error) {
	if force || !isatty.IsTerminal(os.Stdin.Fd()) {
		return NewDirectSource(os.Stdin, reg), nil
	}
	return NewInteractiveSource(reg)
}
