package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetmodels/sweet-models-api/internal/session"
)

// loginRequest is the POST /login request body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the account projection returned to the frontend.
// The password hash never leaves the server.
type loginUser struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	Role        string  `json:"role"`
	DisplayName *string `json:"display_name"`
}

// loginResponse is the POST /login success body.
type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// handleLogin authenticates an email/password pair and issues a session token.
//
// POST /login
//
// Responses:
//   - 200: {token, user}
//   - 400: BAD_REQUEST (malformed body)
//   - 401: INVALID_CREDENTIALS (unknown email or wrong password)
//   - 500: DATABASE_ERROR (store failure)
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	token, acc, err := s.issuer.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid email or password")
			return
		}
		s.logger.Error("login failed",
			"error", err,
			"request_id", r.Context().Value(ctxKeyRequestID),
		)
		writeError(w, http.StatusInternalServerError, ErrCodeDatabaseError, "Database error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:          acc.ID,
			Email:       acc.Email,
			Role:        acc.Role,
			DisplayName: acc.DisplayName,
		},
	})
}
