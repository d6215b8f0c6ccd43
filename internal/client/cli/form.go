package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/caesarlite/internal/client/form"
	"github.com/spf13/cobra"
)

// runProgram is a test seam around tea.Program so tests do not need a terminal.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

func newFormCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "form",
		Aliases: []string{"gui", "tui"},
		Short:   "Open the interactive encrypt/decrypt form",
		Args:    cobra.NoArgs,
		RunE:    app.runForm,
	}
	cmd.Flags().StringP(flagShift, "s", "", "initial shift/key (default from config)")
	return cmd
}

func (a *App) runForm(cmd *cobra.Command, args []string) error {
	shift, err := readShift(cmd, a.config.DefaultShift)
	if err != nil {
		return err
	}

	a.log.Debug(cmd.Context(), "starting form", "shift", shift)
	_, err = runProgram(form.New(shift),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(cmd.Context()),
	)
	return err
}
