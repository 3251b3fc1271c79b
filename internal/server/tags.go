package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/merchkit/ordertags/internal/metrics"
)

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.storage.ListTags(r.Context())
	if err != nil {
		zap.S().Errorf("Error fetching tags: %v", err)
		metrics.OperationErrorsTotal.WithLabelValues("list tags").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to fetch tags")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Tag name is required")
		return
	}

	tag, err := s.storage.CreateTag(r.Context(), name)
	if err != nil {
		zap.S().Errorf("Error creating/updating tag: %v", err)
		metrics.OperationErrorsTotal.WithLabelValues("create tag").Inc()
		respondError(w, http.StatusInternalServerError, "Failed to create or update tag")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"tag": tag})
}
