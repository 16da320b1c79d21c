package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avelichko/careernet/internal/common"
)

func (s *Server) handleImageUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.NewUploadURL(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Key string `json:"key"`
		URL string `json:"url"`
	}{Key: key, URL: url})
}

func (s *Server) handleImageGetURL(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		s.writeError(w, r, common.ErrorNotFound)
		return
	}

	url, err := s.images.GetURL(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		URL string `json:"url"`
	}{URL: url})
}
