package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleConnectionRequest(w http.ResponseWriter, r *http.Request) {
	conn, err := s.connections.Request(r.Context(), currentUser(r.Context()).ID, chi.URLParam(r, "userId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, conn)
}

func (s *Server) handleConnectionAccept(w http.ResponseWriter, r *http.Request) {
	err := s.connections.Accept(r.Context(), currentUser(r.Context()).ID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Connection accepted"})
}

func (s *Server) handleConnectionReject(w http.ResponseWriter, r *http.Request) {
	err := s.connections.Reject(r.Context(), currentUser(r.Context()).ID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Connection rejected"})
}

func (s *Server) handleConnectionList(w http.ResponseWriter, r *http.Request) {
	conns, err := s.connections.List(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, conns)
}

func (s *Server) handleConnectionPending(w http.ResponseWriter, r *http.Request) {
	conns, err := s.connections.Pending(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, conns)
}
