package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/example/firmos/internal/core/metrics"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.svc.Metrics.Dashboard(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDailyBurn(w http.ResponseWriter, r *http.Request) {
	report, err := s.svc.Metrics.DailyBurn(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleWeekly(w http.ResponseWriter, r *http.Request) {
	kind, err := metrics.ParseWindowKind(r.URL.Query().Get("window"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := s.svc.Metrics.WeeklyReport(r.Context(), kind)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleWeeklyExport(w http.ResponseWriter, r *http.Request) {
	kind, err := metrics.ParseWindowKind(r.URL.Query().Get("window"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Buffered so a failed export still gets a JSON error.
	var buf bytes.Buffer
	if err := s.svc.Reports.ExportWeekly(r.Context(), kind, &buf); err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="weekly-%s.xlsx"`, kind))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
