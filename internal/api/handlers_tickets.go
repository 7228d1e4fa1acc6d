package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/firmos/internal/ports/primary"
)

func (s *Server) handleListTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := s.svc.Tickets.ListTickets(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tickets)
}

func (s *Server) handleCreateTicket(w http.ResponseWriter, r *http.Request) {
	var req primary.CreateTicketRequest
	if !decode(w, r, &req) {
		return
	}
	ticket, err := s.svc.Tickets.CreateTicket(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

func (s *Server) handleUpdateTicket(w http.ResponseWriter, r *http.Request) {
	var req primary.UpdateTicketRequest
	if !decode(w, r, &req) {
		return
	}
	ticket, err := s.svc.Tickets.UpdateTicket(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (s *Server) handleResolveTicket(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Resolution string `json:"resolution"`
	}
	if !decode(w, r, &req) {
		return
	}
	ticket, err := s.svc.Tickets.ResolveTicket(r.Context(), chi.URLParam(r, "id"), req.Resolution)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	entries, err := s.svc.Logs.ListLogs(r.Context(), primary.LogFilters{
		EntityType: q.Get("entityType"),
		EntityID:   q.Get("entityId"),
		ActorID:    q.Get("actor"),
		Action:     q.Get("action"),
		Limit:      limit,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
