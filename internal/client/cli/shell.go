package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/filex"
	"github.com/dmitrijs2005/caesarlite/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const shellHelp = `Available commands:
  shift [n]          show or set the key (any integer)
  encrypt <text>     encrypt text (alias: e)
  decrypt <text>     decrypt text (alias: d)
  bruteforce <text>  list all 26 candidates (alias: bf)
  encfile, decfile   encrypt / decrypt a file
  exit               leave the shell`

// shellSession is the interactive state behind the shell command.
type shellSession struct {
	shift  int
	reader *bufio.Reader
	w      io.Writer
	log    logging.Logger
}

func newShellCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell",
		Aliases: []string{"repl"},
		Short:   "Start an interactive Caesar cipher shell",
		Args:    cobra.NoArgs,
		RunE:    app.runShell,
	}
	cmd.Flags().StringP(flagShift, "s", "", "initial shift/key (default from config)")
	return cmd
}

func (a *App) runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	shift, err := readShift(cmd, a.config.DefaultShift)
	if err != nil {
		return err
	}

	stdin := cmd.InOrStdin()
	s := &shellSession{
		shift:  shift,
		reader: bufio.NewReader(stdin),
		w:      cmd.OutOrStdout(),
		log:    a.log.With("session", uuid.NewString()),
	}

	interactive := isInteractive(stdin)
	if interactive {
		fmt.Fprintln(s.w, "Welcome to caesarlite (type 'help' for commands)")
	}

	s.log.Info(ctx, "shell started", "shift", shift, "interactive", interactive)
	runREPL(ctx, s, func() string {
		if !interactive {
			return ""
		}
		return s.prompt()
	}, s.reader, s.w)
	s.log.Info(ctx, "shell finished")

	return nil
}

func (s *shellSession) prompt() string {
	return fmt.Sprintf("caesar (shift %d)> ", s.shift)
}

func (s *shellSession) Help(ctx context.Context) error {
	fmt.Fprintln(s.w, shellHelp)
	return nil
}

func (s *shellSession) Shift(ctx context.Context, arg string) error {
	if arg == "" {
		fmt.Fprintf(s.w, "Shift: %d\n", s.shift)
		return nil
	}
	n, err := caesar.ParseShift(arg)
	if err != nil {
		return err
	}
	s.shift = n
	s.log.Debug(ctx, "shift changed", "shift", n)
	fmt.Fprintf(s.w, "Shift: %d\n", n)
	return nil
}

func (s *shellSession) Encrypt(ctx context.Context, text string) error {
	fmt.Fprintln(s.w, caesar.Encrypt(text, s.shift))
	return nil
}

func (s *shellSession) Decrypt(ctx context.Context, text string) error {
	fmt.Fprintln(s.w, caesar.Decrypt(text, s.shift))
	return nil
}

func (s *shellSession) BruteForce(ctx context.Context, text string) error {
	writeCandidates(s.w, text, -1)
	return nil
}

func (s *shellSession) EncryptFile(ctx context.Context) error {
	return s.processFile(ctx, caesar.ModeEncrypt)
}

func (s *shellSession) DecryptFile(ctx context.Context) error {
	return s.processFile(ctx, caesar.ModeDecrypt)
}

// processFile prompts for the input and output paths, offering a suggested
// output name, and runs the transform with the current shift.
func (s *shellSession) processFile(ctx context.Context, mode caesar.Mode) error {
	in, err := GetSimpleText(s.reader, "Input file:", s.w)
	if err != nil {
		return err
	}
	out, err := GetWithDefault(s.reader, "Output file:", filex.SuggestOutputPath(in), s.w)
	if err != nil {
		return err
	}

	if err := filex.ProcessFile(in, out, mode, s.shift); err != nil {
		s.log.Error(ctx, "file processing failed", "mode", mode, "in", in, "out", out, "error", err)
		return err
	}

	s.log.Info(ctx, "file written", "mode", mode, "in", in, "out", out)
	fmt.Fprintf(s.w, "Written: %s\n", out)
	return nil
}
