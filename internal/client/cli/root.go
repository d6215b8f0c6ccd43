package cli

import (
	"github.com/dmitrijs2005/caesarlite/internal/caesar"
	"github.com/dmitrijs2005/caesarlite/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the caesarlite command tree.
func NewRootCmd() *cobra.Command {
	app := NewApp(nil, nil)

	root := &cobra.Command{
		Use:   "caesarlite",
		Short: "Encrypt, decrypt or brute-force text with the Caesar cipher",
		Long: `caesarlite shifts Latin letters by a fixed key and leaves every other
character untouched. It is a teaching tool, not a security product.

EXAMPLES:
  caesarlite encrypt --shift 3 --text "Attack at dawn!"
  caesarlite decrypt --shift 3 --in secret.enc.txt --out secret.dec.txt
  caesarlite run --mode encrypt --shift 3 --text "Attack at dawn!"
  echo "Dwwdfn" | caesarlite bruteforce
  caesarlite shell
  caesarlite form`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.sync()
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newTransformCmd(app, caesar.ModeEncrypt),
		newTransformCmd(app, caesar.ModeDecrypt),
		newRunCmd(app),
		newBruteForceCmd(app),
		newShellCmd(app),
		newFormCmd(app),
	)

	return root
}
