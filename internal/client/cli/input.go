package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/common"
	"github.com/dmitrijs2005/caesarlite/internal/filex"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

const (
	flagShift = "shift"
	flagText  = "text"
	flagIn    = "in"
	flagOut   = "out"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetWithDefault works like GetSimpleText but shows def in the prompt and
// returns it when the user enters an empty line.
func GetWithDefault(reader *bufio.Reader, prompt, def string, w io.Writer) (string, error) {
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, def)
	}
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// isInteractive reports whether r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// readShift returns --shift when given, otherwise def.
func readShift(cmd *cobra.Command, def int) (int, error) {
	if !cmd.Flags().Changed(flagShift) {
		return def, nil
	}
	raw, _ := cmd.Flags().GetString(flagShift)
	return caesar.ParseShift(raw)
}

// getInputText returns the text to process from --text, --in or a piped
// stdin, in that order. --text and --in are mutually exclusive.
func getInputText(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString(flagText)
	in, _ := cmd.Flags().GetString(flagIn)
	hasText := cmd.Flags().Changed(flagText)

	if hasText && in != "" {
		return "", common.ErrConflictingInput
	}
	if hasText {
		return text, nil
	}
	if in != "" {
		return filex.ReadText(in)
	}

	stdin := cmd.InOrStdin()
	if isInteractive(stdin) {
		return "", fmt.Errorf("%w: use --text, --in, or pipe to stdin", common.ErrNoInput)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
