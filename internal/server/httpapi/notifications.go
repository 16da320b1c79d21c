package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleNotificationList(w http.ResponseWriter, r *http.Request) {
	list, err := s.notifications.List(r.Context(), currentUser(r.Context()).ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleNotificationMarkRead(w http.ResponseWriter, r *http.Request) {
	err := s.notifications.MarkRead(r.Context(), currentUser(r.Context()).ID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Notification marked as read"})
}

func (s *Server) handleNotificationDelete(w http.ResponseWriter, r *http.Request) {
	err := s.notifications.Delete(r.Context(), currentUser(r.Context()).ID, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Notification deleted"})
}
