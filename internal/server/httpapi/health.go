package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.opLogger(r, "httpapi.health").Warn(r.Context(), "database ping failed", "error", err)
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, healthResponse{Status: "unavailable"})
		return
	}

	render.JSON(w, r, healthResponse{Status: "ok"})
}
