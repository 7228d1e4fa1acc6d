package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/firmos/internal/ports/primary"
)

func (s *Server) handleGetFinancials(w http.ResponseWriter, r *http.Request) {
	f, err := s.svc.Finance.GetFinancials(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// handleUpdateFinancials takes a flat object of field name to amount.
func (s *Server) handleUpdateFinancials(w http.ResponseWriter, r *http.Request) {
	var fields map[string]float64
	if !decode(w, r, &fields) {
		return
	}
	f, err := s.svc.Finance.UpdateFinancials(r.Context(), primary.UpdateFinancialsRequest{Fields: fields})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req primary.AddExpenseRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.svc.Finance.AddExpense(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Finance.DeleteCustomExpense(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetCashbox(w http.ResponseWriter, r *http.Request) {
	summary, err := s.svc.Cashbox.GetCashbox(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleRecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req primary.RecordTransactionRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := s.svc.Cashbox.RecordTransaction(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListIncome(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entries, err := s.svc.Income.ListIncome(r.Context(), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleRecordIncome(w http.ResponseWriter, r *http.Request) {
	var req primary.RecordIncomeRequest
	if !decode(w, r, &req) {
		return
	}
	entry, err := s.svc.Income.RecordIncome(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
