package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/logging"
)

const (
	msgDuplicateUsername  = "Username already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUnauthorized       = "invalid or expired token"
	msgNotFound           = "Note not found"
	msgInternal           = "internal server error"
)

// writeError maps a service error onto a status and a client-safe message.
// Validation errors reach here unwrapped, so their text is the client message.
// Unexpected errors are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, log logging.Logger, err error) {
	switch {
	case common.IsValidation(err):
		writeMessage(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrDuplicateUsername):
		writeMessage(w, r, http.StatusBadRequest, msgDuplicateUsername)
	case errors.Is(err, common.ErrInvalidCredentials):
		writeMessage(w, r, http.StatusBadRequest, msgInvalidCredentials)
	case common.IsTokenError(err), errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, r, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, r, http.StatusNotFound, msgNotFound)
	default:
		log.Error(r.Context(), "request failed", "error", err)
		writeMessage(w, r, http.StatusInternalServerError, msgInternal)
	}
}
