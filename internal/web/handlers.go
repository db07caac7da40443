package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
	"github.com/harithais/microbiome-explorer-app/internal/web/templates"
)

// handleIndex renders the landing page with the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templates.IndexPage().Render(r.Context(), w)
}

// handleExplorePage renders the exploration view for a session.
// Filter options are derived from the session's working set, so the
// dropdowns only offer values that can actually match a row.
func (s *Server) handleExplorePage(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, err := s.store.Get(sessionID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	params := templates.ExploreParams{
		Session: sess,
		Options: explore.FilterOptions(sess.Working),
		Rows:    sess.Working,
		SortKey: explore.SortNone,
	}
	templates.ExplorePage(params).Render(r.Context(), w)
}

// handleHealthz reports liveness plus a couple of cheap gauges.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":         "ok",
		"reference_rows": len(s.reference),
		"sessions":       s.store.Count(),
	})
}
