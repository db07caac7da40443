package web

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/harithais/microbiome-explorer-app/internal/dataset"
	"github.com/harithais/microbiome-explorer-app/internal/explore"
	"github.com/harithais/microbiome-explorer-app/internal/logging"
	"github.com/harithais/microbiome-explorer-app/internal/web/templates"
)

// sessionResponse is the JSON body returned after creating a session.
type sessionResponse struct {
	SessionID string   `json:"session_id"`
	Mode      string   `json:"mode"`
	FileName  string   `json:"file_name,omitempty"`
	Rows      int      `json:"rows"`
	Matched   int      `json:"matched"`
	Unmatched []string `json:"unmatched,omitempty"`
}

// handleCreateSession creates an exploration session, either from an
// uploaded microbe list or over the full reference table (mode=all).
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			s.metrics.uploadsTotal.WithLabelValues("error").Inc()
			s.respondError(w, r, err)
			return
		}
		// Plain form post (the browse-all button)
		if err := r.ParseForm(); err != nil {
			s.respondError(w, r, err)
			return
		}
	}

	if r.FormValue("mode") == string(explore.ModeAll) {
		sess, err := s.store.Create(explore.ModeAll, "", s.reference, nil, nil)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		logging.FromContext(r.Context()).Info("session created",
			"session_id", sess.ID,
			"mode", sess.Mode,
			"rows", len(sess.Working),
		)
		s.respondSessionCreated(w, r, sess)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.metrics.uploadsTotal.WithLabelValues("error").Inc()
		s.respondError(w, r, explore.ErrNoFile)
		return
	}
	defer file.Close()

	queries, err := dataset.ParseQueryList(header.Filename, file)
	if err != nil {
		s.metrics.uploadsTotal.WithLabelValues(uploadOutcome(err)).Inc()
		s.respondError(w, r, err)
		return
	}

	result, err := explore.Match(s.reference, queries)
	if err != nil {
		s.metrics.uploadsTotal.WithLabelValues(uploadOutcome(err)).Inc()
		s.respondError(w, r, err)
		return
	}

	sess, err := s.store.Create(explore.ModeUpload, header.Filename, result.Working, result.MatchedValues, result.Unmatched)
	if err != nil {
		s.metrics.uploadsTotal.WithLabelValues("error").Inc()
		s.respondError(w, r, err)
		return
	}

	s.metrics.uploadsTotal.WithLabelValues("created").Inc()
	logging.FromContext(r.Context()).Info("session created",
		"session_id", sess.ID,
		"mode", sess.Mode,
		"file", sess.FileName,
		"rows", len(sess.Working),
		"matched", len(sess.Matched),
		"unmatched", len(sess.Unmatched),
	)
	s.respondSessionCreated(w, r, sess)
}

// uploadOutcome buckets an upload error into a metrics label.
func uploadOutcome(err error) string {
	switch {
	case dataset.IsSchemaError(err):
		return "schema_error"
	case errors.Is(err, explore.ErrNoMatch):
		return "no_match"
	case errors.Is(err, dataset.ErrEmptyFile):
		return "empty"
	default:
		return "error"
	}
}

// respondSessionCreated replies to a successful session creation.
// HTMX clients get a redirect to the explore page; API clients get JSON.
func (s *Server) respondSessionCreated(w http.ResponseWriter, r *http.Request, sess *explore.Session) {
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", "/explore/"+sess.ID)
		w.WriteHeader(http.StatusCreated)
		return
	}

	w.Header().Set("Location", "/explore/"+sess.ID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, sessionResponse{
		SessionID: sess.ID,
		Mode:      string(sess.Mode),
		FileName:  sess.FileName,
		Rows:      len(sess.Working),
		Matched:   len(sess.Matched),
		Unmatched: sess.Unmatched,
	})
}

// rowJSON is one association row in API responses. The study link is
// folded into a single object so clients can render an anchor directly.
type rowJSON struct {
	Microbe    string       `json:"microbe"`
	Host       string       `json:"host"`
	Condition  string       `json:"condition"`
	Effect     string       `json:"effect"`
	SampleType string       `json:"sample_type"`
	Method     string       `json:"method"`
	StudyLink  explore.Link `json:"study_link"`
}

func toRowJSON(rec dataset.Record) rowJSON {
	return rowJSON{
		Microbe:    rec.Microbe,
		Host:       rec.Host,
		Condition:  rec.Condition,
		Effect:     rec.Effect,
		SampleType: rec.SampleType,
		Method:     rec.Method,
		StudyLink:  explore.StudyLink(rec),
	}
}

// handleRows returns the session's working set with filters and sorting
// applied. HTMX requests get the table partial, API clients get JSON.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rows := s.applyView(sess, r.URL.Query())

	if isHTMX(r) {
		templates.ResultsTable(rows).Render(r.Context(), w)
		return
	}

	out := make([]rowJSON, len(rows))
	for i, rec := range rows {
		out[i] = toRowJSON(rec)
	}
	writeJSON(w, map[string]interface{}{
		"total": len(out),
		"rows":  out,
	})
}

// applyView runs the filter and sort pipeline described by query params
// over a session's working set.
func (s *Server) applyView(sess *explore.Session, q url.Values) []dataset.Record {
	sel := explore.NewSelections(parseFilterParams(q))
	rows := explore.Filter(sess.Working, sel)
	return explore.SortRows(rows, explore.ParseSortKey(q.Get("sort")))
}

// parseFilterParams extracts filter[Column]=value pairs from query params.
// Repeated values for the same column accumulate into one selection.
func parseFilterParams(q url.Values) map[string][]string {
	filters := make(map[string][]string)
	for key, values := range q {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		col := key[len("filter[") : len(key)-1]
		for _, v := range values {
			if v == "" {
				continue
			}
			filters[col] = append(filters[col], v)
		}
	}
	return filters
}

// handleOptions returns the distinct filterable values of the session's
// working set, keyed by column name.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	options := explore.FilterOptions(sess.Working)
	out := make(map[string][]string, len(options))
	for col, values := range options {
		out[string(col)] = values
	}
	writeJSON(w, out)
}

// handleCharts returns aggregated chart series for the filtered rows.
// An empty filter result yields an empty series list rather than an error.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rows := s.applyView(sess, r.URL.Query())
	series := explore.ChartData(rows)
	if series == nil {
		series = []explore.ChartSeries{}
	}
	writeJSON(w, map[string]interface{}{"charts": series})
}

// exportColumns is the column order for CSV export. The link columns are
// exported raw so the CSV round-trips back into the reference schema.
var exportColumns = []dataset.Column{
	dataset.ColMicrobe,
	dataset.ColHost,
	dataset.ColCondition,
	dataset.ColEffect,
	dataset.ColSampleType,
	dataset.ColMethod,
	dataset.ColStudyTitle,
	dataset.ColPubMedLink,
}

// handleExport downloads the filtered, sorted rows as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	rows := s.applyView(sess, r.URL.Query())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_results.csv"`)

	csvWriter := csv.NewWriter(w)

	header := make([]string, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = string(col)
	}
	csvWriter.Write(header)

	record := make([]string, len(exportColumns))
	for _, rec := range rows {
		for i, col := range exportColumns {
			record[i] = rec.Field(col)
		}
		csvWriter.Write(record)
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		logging.FromContext(r.Context()).Error("csv export failed",
			"session_id", sess.ID,
			"error", err,
		)
	}
}

// handleUnmatched downloads the uploaded names that matched nothing.
func (s *Server) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, "unmatched_microbes.csv"))

	csvWriter := csv.NewWriter(w)
	csvWriter.Write([]string{"Unmatched Microbes"})
	for _, name := range sess.Unmatched {
		csvWriter.Write([]string{name})
	}
	csvWriter.Flush()
}
