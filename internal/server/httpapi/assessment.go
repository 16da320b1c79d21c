package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avelichko/careernet/internal/assessment"
	"github.com/avelichko/careernet/internal/common"
)

func (s *Server) handleAssessmentQuestions(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, assessment.Questions())
}

// handleAssessment maps quiz answers to career recommendations. Stateless
// and unauthenticated. Answer keys arrive as strings ("0".."4"); anything
// non-numeric is ignored.
func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	var params struct {
		Answers map[string]string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.writeError(w, r, common.ErrMissingFields)
		return
	}

	answers := make(map[int]string, len(params.Answers))
	for k, v := range params.Answers {
		i, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		answers[i] = v
	}

	s.writeJSON(w, http.StatusOK, assessment.Generate(answers))
}
