// Package gateway runs the request checks that must pass before a protected
// handler is invoked. Checks are explicit stages evaluated in order; the
// first rejection ends the request.
package gateway

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/swingnotes/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Outcome is the result of a single Stage.
type Outcome struct {
	ctx      context.Context
	rejected bool
	status   int
	message  string
}

// Pass lets the request continue with ctx, which may carry values added by
// the stage.
func Pass(ctx context.Context) Outcome {
	return Outcome{ctx: ctx}
}

// Reject stops the request with status and a client-facing message.
func Reject(status int, message string) Outcome {
	return Outcome{rejected: true, status: status, message: message}
}

func (o Outcome) Rejected() bool  { return o.rejected }
func (o Outcome) Status() int     { return o.status }
func (o Outcome) Message() string { return o.message }

// Stage inspects a request and decides whether it may proceed.
type Stage interface {
	Name() string
	Check(r *http.Request) Outcome
}

// Pipeline is an ordered list of stages placed in front of a handler.
type Pipeline struct {
	stages []Stage
	logger logging.Logger
}

func NewPipeline(logger logging.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, logger: logger}
}

// Wrap returns a handler that runs every stage before next.
func (p *Pipeline) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, st := range p.stages {
			out := st.Check(r)
			if out.Rejected() {
				p.logger.Debug(r.Context(), "request rejected",
					"stage", st.Name(),
					"status", out.Status(),
					"reason", out.Message(),
					"request_id", middleware.GetReqID(r.Context()),
				)
				writeRejection(w, r, out)
				return
			}
			if out.ctx != nil {
				r = r.WithContext(out.ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

type rejection struct {
	Message string `json:"message"`
}

func writeRejection(w http.ResponseWriter, r *http.Request, out Outcome) {
	if out.Status() == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="notes"`)
	}
	render.Status(r, out.Status())
	render.JSON(w, r, rejection{Message: out.Message()})
}
