package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/common"
	"github.com/dmitrijs2005/caesarlite/internal/filex"
	"github.com/spf13/cobra"
)

func newTransformCmd(app *App, mode caesar.Mode) *cobra.Command {
	verb := "Encrypt"
	if mode == caesar.ModeDecrypt {
		verb = "Decrypt"
	}

	cmd := &cobra.Command{
		Use:   string(mode),
		Short: verb + " text or a file with the Caesar cipher",
		Long: verb + ` text given with --text, read from --in, or piped to stdin.

  caesarlite ` + string(mode) + ` --shift 3 --text "Attack at dawn!"
  caesarlite ` + string(mode) + ` --shift 3 --in input.txt --out output.txt
  echo "Attack" | caesarlite ` + string(mode) + ` -s 3

Any integer shift is accepted and reduced modulo 26.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runTransform(cmd, mode)
		},
	}

	cmd.Flags().StringP(flagShift, "s", "", "shift/key, any integer (default from config)")
	cmd.Flags().StringP(flagText, "t", "", "text to process directly")
	cmd.Flags().StringP(flagIn, "i", "", "input file path")
	cmd.Flags().StringP(flagOut, "o", "", "output file path (required with --in)")

	return cmd
}

const flagMode = "mode"

// newRunCmd exposes encrypt and decrypt behind a single --mode flag.
func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Encrypt or decrypt, selecting the direction with --mode",
		Long: `Same as the encrypt and decrypt commands, with the direction given by --mode.

  caesarlite run --mode encrypt --shift 3 --text "Attack at dawn!"
  caesarlite run --mode decrypt --shift 3 --in secret.enc.txt --out secret.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString(flagMode)
			mode, err := caesar.ParseMode(raw)
			if err != nil {
				return err
			}
			return app.runTransform(cmd, mode)
		},
	}

	cmd.Flags().StringP(flagMode, "m", "", "operation to perform: encrypt or decrypt")
	cmd.Flags().StringP(flagShift, "s", "", "shift/key, any integer (default from config)")
	cmd.Flags().StringP(flagText, "t", "", "text to process directly")
	cmd.Flags().StringP(flagIn, "i", "", "input file path")
	cmd.Flags().StringP(flagOut, "o", "", "output file path (required with --in)")
	_ = cmd.MarkFlagRequired(flagMode)

	return cmd
}

func (a *App) runTransform(cmd *cobra.Command, mode caesar.Mode) error {
	ctx := cmd.Context()

	shift, err := readShift(cmd, a.config.DefaultShift)
	if err != nil {
		return err
	}

	in, _ := cmd.Flags().GetString(flagIn)
	out, _ := cmd.Flags().GetString(flagOut)

	if strings.TrimSpace(in) != "" && !cmd.Flags().Changed(flagText) {
		if strings.TrimSpace(out) == "" {
			return fmt.Errorf("%w: --out is required when using --in", common.ErrMissingOutputPath)
		}
		if err := filex.ProcessFile(in, out, mode, shift); err != nil {
			a.log.Error(ctx, "file processing failed", "in", in, "out", out, "error", err)
			return err
		}
		a.log.Info(ctx, "file written", "mode", mode, "in", in, "out", out)
		fmt.Fprintf(cmd.OutOrStdout(), "Written: %s\n", out)
		return nil
	}

	text, err := getInputText(cmd)
	if err != nil {
		return err
	}

	a.log.Debug(ctx, "transforming text", "mode", mode, "shift", shift, "bytes", len(text))
	fmt.Fprintln(cmd.OutOrStdout(), caesar.Apply(mode, text, shift))
	return nil
}
