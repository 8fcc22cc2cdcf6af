package cli

import (
	"io"

	"github.com/dmitrijs2005/swingnotes/internal/client/config"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	server     string
	tokenFile  string
}

// NewRootCommand builds the "notes" command tree. Settings come from
// defaults, the -c JSON file, SWINGNOTES_* variables and finally the
// persistent flags.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		flags rootFlags
		app   App
	)

	root := &cobra.Command{
		Use:           "notes",
		Short:         "Command-line client for the Swing Notes API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configFile)
			if err != nil {
				return err
			}

			pf := cmd.Flags()
			if pf.Changed("server") {
				cfg.ServerURL = flags.server
			}
			if pf.Changed("token-file") {
				cfg.TokenFile = flags.tokenFile
			}

			app = *NewApp(cfg, in, out)
			return nil
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "path to a JSON config file")
	pf.StringVarP(&flags.server, "server", "a", "", "base URL of the notes server")
	pf.StringVar(&flags.tokenFile, "token-file", "", "where to keep the login token")

	root.AddCommand(
		newSignupCommand(&app),
		newLoginCommand(&app),
		newLogoutCommand(&app),
		newStatusCommand(&app),
		newListCommand(&app),
		newSearchCommand(&app),
		newGetCommand(&app),
		newCreateCommand(&app),
		newUpdateCommand(&app),
		newDeleteCommand(&app),
	)

	return root
}
