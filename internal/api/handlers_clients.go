package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/firmos/internal/ports/primary"
)

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.svc.Clients.ListClients(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req primary.CreateClientRequest
	if !decode(w, r, &req) {
		return
	}
	client, err := s.svc.Clients.CreateClient(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := s.svc.Clients.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var req primary.UpdateClientRequest
	if !decode(w, r, &req) {
		return
	}
	client, err := s.svc.Clients.UpdateClient(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (s *Server) handleListCaseTypes(w http.ResponseWriter, r *http.Request) {
	caseTypes, err := s.svc.CaseTypes.ListCaseTypes(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, caseTypes)
}

func (s *Server) handleCreateCaseType(w http.ResponseWriter, r *http.Request) {
	var req primary.CaseTypeRequest
	if !decode(w, r, &req) {
		return
	}
	ct, err := s.svc.CaseTypes.CreateCaseType(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ct)
}

func (s *Server) handleUpdateCaseType(w http.ResponseWriter, r *http.Request) {
	var req primary.CaseTypeRequest
	if !decode(w, r, &req) {
		return
	}
	ct, err := s.svc.CaseTypes.UpdateCaseType(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ct)
}

func (s *Server) handleDeleteCaseType(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.CaseTypes.DeleteCaseType(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
