package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/swingnotes/internal/client/models"
	"github.com/dmitrijs2005/swingnotes/internal/netx"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type noteBody struct {
	Title *string `json:"title,omitempty"`
	Text  *string `json:"text,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) call(ctx context.Context, method, path, token string, in, out any) error {
	resp, err := netx.DoJSON(ctx, c.http, method, c.baseURL+path, token, in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !resp.OK() {
		var m messageBody
		_ = resp.Decode(&m)
		return &APIError{Status: resp.Status, Message: m.Message}
	}

	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

func (c *Client) Signup(ctx context.Context, username, password string) (*models.Signup, error) {
	var out models.Signup
	if err := c.call(ctx, http.MethodPost, "/user/signup", "", credentials{username, password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.call(ctx, http.MethodPost, "/user/login", "", credentials{username, password}, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) ListNotes(ctx context.Context, token string) ([]models.Note, error) {
	var out []models.Note
	if err := c.call(ctx, http.MethodGet, "/notes", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchNotes(ctx context.Context, token, query string) ([]models.Note, error) {
	var out []models.Note
	path := "/notes/search?q=" + url.QueryEscape(query)
	if err := c.call(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetNote(ctx context.Context, token, id string) (*models.Note, error) {
	var out models.Note
	if err := c.call(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateNote(ctx context.Context, token, title, text string) (*models.Note, error) {
	var out models.Note
	if err := c.call(ctx, http.MethodPost, "/notes", token, noteBody{Title: &title, Text: &text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote changes the fields that are non-nil.
func (c *Client) UpdateNote(ctx context.Context, token, id string, title, text *string) (*models.Note, error) {
	var out models.Note
	if err := c.call(ctx, http.MethodPut, "/notes/"+url.PathEscape(id), token, noteBody{Title: title, Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteNote(ctx context.Context, token, id string) error {
	return c.call(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), token, nil, nil)
}

// Ping reports whether the server and its database are reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, http.MethodGet, "/healthz", "", nil, nil)
}
