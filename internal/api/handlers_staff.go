package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/firmos/internal/ports/primary"
)

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.svc.Employees.ListEmployees(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req primary.CreateEmployeeRequest
	if !decode(w, r, &req) {
		return
	}
	emp, err := s.svc.Employees.CreateEmployee(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := s.svc.Employees.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (s *Server) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req primary.UpdateEmployeeRequest
	if !decode(w, r, &req) {
		return
	}
	emp, err := s.svc.Employees.UpdateEmployee(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (s *Server) handleListTaskLogs(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	logs, err := s.svc.TaskLogs.ListTaskLogs(r.Context(), primary.TaskLogFilters{
		EmployeeID: q.Get("employeeId"),
		ClientID:   q.Get("clientId"),
		Since:      q.Get("since"),
		Until:      q.Get("until"),
		Limit:      limit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

// handleLogTask returns the stored log with its valuation breakdown.
func (s *Server) handleLogTask(w http.ResponseWriter, r *http.Request) {
	var req primary.LogTaskRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.svc.TaskLogs.LogTask(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
