package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/go-chi/render"
)

// decodeJSON reads a JSON body of at most maxBodyBytes into v. Any failure
// is reported as a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := render.DecodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return common.NewValidationError("", "request body too large")
		}
		return common.NewValidationError("", "invalid JSON body")
	}
	return nil
}
