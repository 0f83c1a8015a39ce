package api

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/hitanshu04/coldleads-ai/internal/lead"
)

type generateLeadRequest struct {
	URL string `json:"url"`
}

func (s *Server) generateLead(w http.ResponseWriter, r *http.Request) {
	var req generateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusUnprocessableEntity)
		return
	}
	targetURL := strings.TrimSpace(req.URL)
	if !isAbsoluteURL(targetURL) {
		http.Error(w, "url must be an absolute http(s) URL", http.StatusUnprocessableEntity)
		return
	}

	searcher, err := s.caps.search()
	if err != nil {
		http.Error(w, "search unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	generator, err := s.caps.llm()
	if err != nil {
		http.Error(w, "text generation unavailable: "+err.Error(), http.StatusServiceUnavailable)
		return
	}

	pipeline := lead.Pipeline{
		Search:    searcher,
		Generator: generator,
		Persona:   lead.Persona{Name: s.cfg.SenderName, Role: s.cfg.SenderRole},
	}
	result := pipeline.Generate(r.Context(), targetURL)
	log.Printf("generated lead for %s (request %s)", targetURL, requestIDFrom(r.Context()))

	writeJSONStatus(w, result, http.StatusOK)
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
