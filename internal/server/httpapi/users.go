package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Token   string `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.signup"
	log := h.opLogger(r, op)

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, log, err)
		return
	}

	res, err := h.users.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	log.Info(r.Context(), "user created", "user_id", res.User.ID)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, signupResponse{
		Message: "User created successfully",
		UserID:  res.User.ID,
		Token:   res.Token,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.login"
	log := h.opLogger(r, op)

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, log, err)
		return
	}

	token, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	render.JSON(w, r, tokenResponse{Token: token})
}
