// Package httpapi exposes the account and note operations over REST.
package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/swingnotes/internal/logging"
	"github.com/dmitrijs2005/swingnotes/internal/server/gateway"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type UserService interface {
	Signup(ctx context.Context, username, password string) (*services.SignupResult, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type NoteService interface {
	List(ctx context.Context, userID string) ([]models.Note, error)
	Create(ctx context.Context, userID, title, text string) (*models.Note, error)
	Get(ctx context.Context, userID, noteID string) (*models.Note, error)
	Update(ctx context.Context, userID, noteID string, patch models.NotePatch) (*models.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
	SearchByTitle(ctx context.Context, userID, query string) ([]models.Note, error)
}

// Pinger reports whether the backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	logger   logging.Logger
	users    UserService
	notes    NoteService
	verifier gateway.TokenVerifier
	db       Pinger
}

func NewHandler(logger logging.Logger, users UserService, notes NoteService, verifier gateway.TokenVerifier, db Pinger) *Handler {
	return &Handler{logger: logger, users: users, notes: notes, verifier: verifier, db: db}
}

// Routes builds the full router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/healthz", h.health)
	r.Get("/api-docs", h.docsIndex)
	r.Get("/api-docs/openapi.yaml", h.docsYAML)
	r.Get("/api-docs/openapi.json", h.docsJSON)

	r.Route("/user", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	authed := gateway.NewPipeline(h.logger, gateway.BearerAuth(h.verifier))

	r.Route("/notes", func(r chi.Router) {
		r.Use(authed.Wrap)
		r.Get("/", h.listNotes)
		r.Post("/", h.createNote)
		r.Get("/search", h.searchNotes)
		r.Get("/{id}", h.getNote)
		r.Put("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
	})

	return r
}

func (h *Handler) opLogger(r *http.Request, op string) logging.Logger {
	return h.logger.With(
		"op", op,
		"request_id", middleware.GetReqID(r.Context()),
	)
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, messageResponse{Message: msg})
}
