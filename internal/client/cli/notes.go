package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newListCommand(a *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			notes, err := a.api.ListNotes(cmd.Context(), token)
			if err != nil {
				return a.explain(err)
			}
			return a.printNotes(notes, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newSearchCommand(a *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find notes whose title contains text (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			notes, err := a.api.SearchNotes(cmd.Context(), token, strings.Join(args, " "))
			if err != nil {
				return a.explain(err)
			}
			return a.printNotes(notes, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newGetCommand(a *App) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			n, err := a.api.GetNote(cmd.Context(), token, args[0])
			if err != nil {
				return a.explain(err)
			}
			return a.printNote(n, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newCreateCommand(a *App) *cobra.Command {
	var title, text string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note (prompts for missing fields)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("title") {
				if title, err = GetSimpleText(a.in, "Title", a.out); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("text") {
				if text, err = GetMultiline(a.in, "Text", a.out); err != nil {
					return err
				}
			}

			n, err := a.api.CreateNote(cmd.Context(), token, title, text)
			if err != nil {
				return a.explain(err)
			}
			_, err = fmt.Fprintf(a.out, "Created note %s\n", n.ID)
			return err
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&text, "text", "x", "", "note text")
	return cmd
}

func newUpdateCommand(a *App) *cobra.Command {
	var title, text string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the title and/or text of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tp, xp *string
			if cmd.Flags().Changed("title") {
				tp = &title
			}
			if cmd.Flags().Changed("text") {
				xp = &text
			}
			if tp == nil && xp == nil {
				return errors.New("nothing to update, pass --title and/or --text")
			}

			token, err := a.token()
			if err != nil {
				return err
			}

			n, err := a.api.UpdateNote(cmd.Context(), token, args[0], tp, xp)
			if err != nil {
				return a.explain(err)
			}
			_, err = fmt.Fprintf(a.out, "Updated note %s\n", n.ID)
			return err
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&text, "text", "x", "", "new text")
	return cmd
}

func newDeleteCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.token()
			if err != nil {
				return err
			}
			if err := a.api.DeleteNote(cmd.Context(), token, args[0]); err != nil {
				return a.explain(err)
			}
			_, err = fmt.Fprintf(a.out, "Deleted note %s\n", args[0])
			return err
		},
	}
}
