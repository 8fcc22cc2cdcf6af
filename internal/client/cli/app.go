package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/client/client"
	"github.com/dmitrijs2005/swingnotes/internal/client/config"
	"github.com/dmitrijs2005/swingnotes/internal/client/models"
)

// API is the subset of the REST client used by the commands.
type API interface {
	Signup(ctx context.Context, username, password string) (*models.Signup, error)
	Login(ctx context.Context, username, password string) (string, error)
	ListNotes(ctx context.Context, token string) ([]models.Note, error)
	SearchNotes(ctx context.Context, token, query string) ([]models.Note, error)
	GetNote(ctx context.Context, token, id string) (*models.Note, error)
	CreateNote(ctx context.Context, token, title, text string) (*models.Note, error)
	UpdateNote(ctx context.Context, token, id string, title, text *string) (*models.Note, error)
	DeleteNote(ctx context.Context, token, id string) error
	Ping(ctx context.Context) error
}

// newAPI is a seam for tests.
var newAPI = func(cfg *config.Config) API {
	return client.New(cfg.ServerURL, cfg.Timeout)
}

type App struct {
	config *config.Config
	api    API
	tokens *TokenStore
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		config: cfg,
		api:    newAPI(cfg),
		tokens: NewTokenStore(cfg.TokenFile),
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// token returns the saved token or ErrNotLoggedIn.
func (a *App) token() (string, error) {
	return a.tokens.Load()
}

// explain turns well-known API failures into actionable messages.
func (a *App) explain(err error) error {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Errorf("session expired or invalid, run 'notes login': %w", err)
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Errorf("cannot reach %s: %w", a.config.ServerURL, err)
	}
	return err
}

func (a *App) printNotes(notes []models.Note, asJSON bool) error {
	if asJSON {
		return a.printJSON(notes)
	}
	if len(notes) == 0 {
		_, err := fmt.Fprintln(a.out, "No notes.")
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Title, n.UpdatedAt.Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) printNote(n *models.Note, asJSON bool) error {
	if asJSON {
		return a.printJSON(n)
	}
	_, err := fmt.Fprintf(a.out, "ID:      %s\nTitle:   %s\nCreated: %s\nUpdated: %s\n\n%s\n",
		n.ID, n.Title,
		n.CreatedAt.Local().Format(time.DateTime),
		n.UpdatedAt.Local().Format(time.DateTime),
		n.Text)
	return err
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
