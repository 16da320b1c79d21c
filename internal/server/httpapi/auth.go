package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/server/services"
)

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var params services.SignupParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, common.ErrMissingFields)
		return
	}

	user, token, err := s.users.Signup(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cookies.Set(w, token)
	s.writeJSON(w, http.StatusCreated, messageResponse{Message: "User registered successfully"})

	// the response is already committed; the email must not delay or fail it
	s.users.DispatchWelcome(user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var params struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, common.ErrInvalidCredentials)
		return
	}

	_, token, err := s.users.Login(r.Context(), params.Username, params.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cookies.Set(w, token)
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Logged in successfully"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.cookies.Clear(w)
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, currentUser(r.Context()))
}
