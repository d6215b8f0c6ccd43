package caesar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/caesarlite/internal/common"
)

// Mode selects the direction of the transform.
type Mode string

const (
	ModeEncrypt Mode = "encrypt"
	ModeDecrypt Mode = "decrypt"
)

// ParseMode accepts "encrypt"/"enc"/"e" and "decrypt"/"dec"/"d", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return ModeEncrypt, nil
	case "decrypt", "dec", "d":
		return ModeDecrypt, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownMode, s)
	}
}

// Apply runs Encrypt or Decrypt depending on mode. Unknown modes encrypt.
func Apply(mode Mode, text string, shift int) string {
	if mode == ModeDecrypt {
		return Decrypt(text, shift)
	}
	return Encrypt(text, shift)
}

// ParseShift converts user input into a shift. Any integer is accepted;
// anything else is reported as common.ErrInvalidShift.
func ParseShift(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidShift, s)
	}
	return n, nil
}
