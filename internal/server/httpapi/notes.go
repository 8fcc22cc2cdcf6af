package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/server/gateway"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/validation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type createNoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type updateNoteRequest struct {
	Title *string `json:"title"`
	Text  *string `json:"text"`
}

// callerID returns the verified user id. The gateway guarantees it is set on
// every /notes route.
func callerID(r *http.Request) (string, error) {
	id, ok := gateway.IdentityFromContext(r.Context())
	if !ok || id.UserID == "" {
		return "", common.ErrorUnauthorized
	}
	return id.UserID, nil
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.listNotes"
	log := h.opLogger(r, op)

	uid, err := callerID(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	notes, err := h.notes.List(r.Context(), uid)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	render.JSON(w, r, notes)
}

func (h *Handler) searchNotes(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.searchNotes"
	log := h.opLogger(r, op)

	uid, err := callerID(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	notes, err := h.notes.SearchByTitle(r.Context(), uid, r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	render.JSON(w, r, notes)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.getNote"
	log := h.opLogger(r, op)

	uid, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	note, err := h.notes.Get(r.Context(), uid, noteID)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	render.JSON(w, r, note)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.createNote"
	log := h.opLogger(r, op)

	uid, err := callerID(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	var req createNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, log, err)
		return
	}

	note, err := h.notes.Create(r.Context(), uid, req.Title, req.Text)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	log.Debug(r.Context(), "note created", "note_id", note.ID, "user_id", uid)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, note)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.updateNote"
	log := h.opLogger(r, op)

	uid, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	var req updateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, log, err)
		return
	}

	note, err := h.notes.Update(r.Context(), uid, noteID, models.NotePatch{Title: req.Title, Text: req.Text})
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	render.JSON(w, r, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.deleteNote"
	log := h.opLogger(r, op)

	uid, noteID, err := noteParams(r)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	if err := h.notes.Delete(r.Context(), uid, noteID); err != nil {
		writeError(w, r, log, err)
		return
	}

	log.Debug(r.Context(), "note deleted", "note_id", noteID, "user_id", uid)

	render.JSON(w, r, messageResponse{Message: "Note deleted successfully"})
}

func noteParams(r *http.Request) (string, string, error) {
	uid, err := callerID(r)
	if err != nil {
		return "", "", err
	}
	noteID, err := validation.NoteID(chi.URLParam(r, "id"))
	if err != nil {
		return "", "", err
	}
	return uid, noteID, nil
}
