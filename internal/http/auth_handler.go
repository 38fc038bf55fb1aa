package http

import (
	"encoding/json"
	"net/http"

	"librarysvc/internal/auth"
)

type AuthHandler struct {
	tokens *auth.Service
}

func NewAuthHandler(tokens *auth.Service) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login validates the credential pair and returns a fresh session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONMessage(w, http.StatusBadRequest, "Could not verify!")
		return
	}
	if len(ValidateStruct(req)) > 0 {
		JSONMessage(w, http.StatusBadRequest, "Could not verify!")
		return
	}

	token, err := h.tokens.Login(req.Username, req.Password)
	if err != nil {
		JSONMessage(w, http.StatusUnauthorized, "Invalid credentials!")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
