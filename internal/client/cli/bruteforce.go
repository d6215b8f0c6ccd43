package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/spf13/cobra"
)

func newBruteForceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bruteforce",
		Aliases: []string{"brute", "bf"},
		Short:   "Decrypt ciphertext with all 26 keys",
		Long: `Print every candidate plaintext, one per line as "<shift>\t<text>".
The input is assumed to be ciphertext: line N is the text decrypted with key N.

  caesarlite bruteforce --text "Dwwdfn dw gdzq!"
  caesarlite bruteforce --in secret.enc.txt --shift 3`,
		Args: cobra.NoArgs,
		RunE: app.runBruteForce,
	}

	cmd.Flags().StringP(flagText, "t", "", "ciphertext to attack")
	cmd.Flags().StringP(flagIn, "i", "", "input file path")
	cmd.Flags().StringP(flagShift, "s", "", "print only the candidate for this key")

	return cmd
}

func (a *App) runBruteForce(cmd *cobra.Command, args []string) error {
	text, err := getInputText(cmd)
	if err != nil {
		return err
	}

	only := -1
	if cmd.Flags().Changed(flagShift) {
		s, err := readShift(cmd, 0)
		if err != nil {
			return err
		}
		only = caesar.Normalize(s)
	}

	a.log.Debug(cmd.Context(), "brute forcing", "bytes", len(text), "only", only)
	writeCandidates(cmd.OutOrStdout(), text, only)
	return nil
}

// writeCandidates prints the brute-force candidates of text. only selects a
// single key; a negative value prints all of them.
func writeCandidates(w io.Writer, text string, only int) {
	for s, c := range caesar.BruteForce(text) {
		if only >= 0 && s != only {
			continue
		}
		fmt.Fprintf(w, "%2d\t%s\n", s, c)
	}
}
