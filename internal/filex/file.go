// Package filex reads and writes the text files processed by caesarlite.
//
// Files are written as UTF-8. When reading, UTF-8 is tried first and the
// bytes are decoded as Latin-1 (ISO-8859-1) if that fails, so any byte
// content yields a string. Only filesystem errors are returned.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/common"
	"golang.org/x/text/encoding/charmap"
)

const (
	encSuffix = ".enc.txt"
	decSuffix = ".dec.txt"
)

// ReadText returns the contents of path decoded as UTF-8, or as Latin-1 when
// the file is not valid UTF-8.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// unreachable: every byte maps to a Latin-1 code point
		return "", fmt.Errorf("decode %s as latin-1: %w", path, err)
	}
	return string(decoded), nil
}

// WriteText writes data to path as UTF-8, creating or truncating the file.
// Missing parent directories are created.
func WriteText(path string, data string) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// SuggestOutputPath proposes an output file name for in: "x.enc.txt" becomes
// "x.dec.txt", anything else gets ".enc.txt" appended.
func SuggestOutputPath(in string) string {
	if in == "" {
		return ""
	}
	if strings.HasSuffix(in, encSuffix) {
		return strings.TrimSuffix(in, encSuffix) + decSuffix
	}
	return in + encSuffix
}

// ProcessFile reads in, applies mode with shift and writes the result to out.
// Both paths are checked before any I/O takes place.
func ProcessFile(in, out string, mode caesar.Mode, shift int) error {
	in = strings.TrimSpace(in)
	out = strings.TrimSpace(out)

	if in == "" {
		return common.ErrMissingInputPath
	}
	if out == "" {
		return common.ErrMissingOutputPath
	}

	data, err := ReadText(in)
	if err != nil {
		return err
	}

	return WriteText(out, caesar.Apply(mode, data, shift))
}
