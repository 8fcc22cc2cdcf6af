// Package validation holds the input rules for every public operation.
// Each function trims, checks and returns the normalized input, or a
// *common.ValidationError naming the offending field.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/cryptox"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	UsernameMin = 3
	UsernameMax = 30
	PasswordMin = 6
	TitleMax    = 50
	TextMax     = 300
)

var validate = validator.New()

// CredentialsInput is a normalized username/password pair.
type CredentialsInput struct {
	Username string
	Password string
}

// NoteInput is a normalized title/text pair for a new note.
type NoteInput struct {
	Title string
	Text  string
}

// NotePatchInput carries the normalized fields of a partial update. At least
// one of them is non-nil.
type NotePatchInput struct {
	Title *string
	Text  *string
}

// Credentials applies the signup rules.
func Credentials(username, password string) (CredentialsInput, error) {
	username = strings.TrimSpace(username)

	if err := check("username", username, fmt.Sprintf("required,min=%d,max=%d", UsernameMin, UsernameMax)); err != nil {
		return CredentialsInput{}, err
	}
	if err := check("password", password, fmt.Sprintf("required,min=%d", PasswordMin)); err != nil {
		return CredentialsInput{}, err
	}
	if len(password) > cryptox.MaxPasswordBytes {
		return CredentialsInput{}, common.NewValidationError("password", "must be at most %d bytes", cryptox.MaxPasswordBytes)
	}

	return CredentialsInput{Username: username, Password: password}, nil
}

// LoginCredentials only requires both values to be present. Length rules are
// not applied so that a login attempt never reveals them.
func LoginCredentials(username, password string) (CredentialsInput, error) {
	username = strings.TrimSpace(username)

	if err := check("username", username, "required"); err != nil {
		return CredentialsInput{}, err
	}
	if err := check("password", password, "required"); err != nil {
		return CredentialsInput{}, err
	}

	return CredentialsInput{Username: username, Password: password}, nil
}

// NewNote validates the fields of a note being created.
func NewNote(title, text string) (NoteInput, error) {
	t, err := noteTitle(title)
	if err != nil {
		return NoteInput{}, err
	}
	x, err := noteText(text)
	if err != nil {
		return NoteInput{}, err
	}
	return NoteInput{Title: t, Text: x}, nil
}

// NotePatch validates a partial update. Fields left nil are not touched.
func NotePatch(title, text *string) (NotePatchInput, error) {
	if title == nil && text == nil {
		return NotePatchInput{}, common.NewValidationError("", "at least one of title or text is required")
	}

	var in NotePatchInput
	if title != nil {
		t, err := noteTitle(*title)
		if err != nil {
			return NotePatchInput{}, err
		}
		in.Title = &t
	}
	if text != nil {
		x, err := noteText(*text)
		if err != nil {
			return NotePatchInput{}, err
		}
		in.Text = &x
	}
	return in, nil
}

// SearchQuery validates the title search term.
func SearchQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", common.NewValidationError("q", "search query (q) is required")
	}
	return q, nil
}

// NoteID parses raw as a UUID and returns its canonical form.
func NoteID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", common.NewValidationError("id", "must be a valid UUID")
	}
	return id.String(), nil
}

func noteTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	return s, check("title", s, fmt.Sprintf("required,max=%d", TitleMax))
}

func noteText(s string) (string, error) {
	s = strings.TrimSpace(s)
	return s, check("text", s, fmt.Sprintf("required,max=%d", TextMax))
}

// check runs a validator tag against v and turns the first failure into a
// readable *common.ValidationError.
func check(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return common.NewValidationError(field, "is invalid")
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return common.NewValidationError(field, "is required")
	case "min":
		return common.NewValidationError(field, "must be at least %s characters", fe.Param())
	case "max":
		return common.NewValidationError(field, "must be at most %s characters", fe.Param())
	default:
		return common.NewValidationError(field, "failed %q check", fe.Tag())
	}
}
