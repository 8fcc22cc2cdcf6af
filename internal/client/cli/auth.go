package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// credentials takes the username from args when given and prompts for the
// rest.
func (a *App) credentials(args []string) (string, string, error) {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		u, err := GetSimpleText(a.in, "Username", a.out)
		if err != nil {
			return "", "", err
		}
		username = u
	}

	password, err := GetPassword(a.in, a.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

func newSignupCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signup [username]",
		Short: "Create an account and log in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := a.credentials(args)
			if err != nil {
				return err
			}

			res, err := a.api.Signup(cmd.Context(), username, password)
			if err != nil {
				return a.explain(err)
			}
			if err := a.tokens.Save(res.Token); err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "Signed up as %s (id %s)\n", username, res.UserID)
			return err
		},
	}
}

func newLoginCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Log in and remember the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password, err := a.credentials(args)
			if err != nil {
				return err
			}

			token, err := a.api.Login(cmd.Context(), username, password)
			if err != nil {
				return a.explain(err)
			}
			if err := a.tokens.Save(token); err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "Logged in as %s\n", username)
			return err
		},
	}
}

func newLogoutCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.tokens.Clear(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(a.out, "Logged out")
			return err
		},
	}
}

func newStatusCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.api.Ping(cmd.Context()); err != nil {
				return a.explain(err)
			}
			_, err := fmt.Fprintf(a.out, "%s is up\n", a.config.ServerURL)
			return err
		},
	}
}
