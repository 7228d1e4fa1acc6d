// Package api provides the firmos HTTP API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/firmos/internal/app"
	"github.com/example/firmos/internal/ctxutil"
	"github.com/example/firmos/internal/models"
	"github.com/example/firmos/internal/observability"
	"github.com/example/firmos/internal/ports/primary"
)

// ActorHeader names the staff member making a request.
const ActorHeader = "X-Firm-Actor"

// Services are the primary ports the API serves.
type Services struct {
	Employees primary.EmployeeService
	TaskLogs  primary.TaskLogService
	Clients   primary.ClientService
	CaseTypes primary.CaseTypeService
	Finance   primary.FinanceService
	Cashbox   primary.CashboxService
	Income    primary.IncomeService
	Tickets   primary.TicketService
	Logs      primary.LogService
	Metrics   primary.MetricsService
	Advisor   primary.AdvisorService
	Reports   primary.ReportService
	Feed      *app.Feed
}

// Options configure the HTTP server.
type Options struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// Server is the firmos HTTP API server.
type Server struct {
	svc    Services
	opts   Options
	logger *zap.Logger
}

// NewServer creates a new API server.
func NewServer(svc Services, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 60 * time.Second
	}
	return &Server{svc: svc, opts: opts, logger: logger}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(instrument)
	r.Use(s.cors)
	r.Use(actor)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":            "ok",
			"advisorConfigured": s.svc.Advisor != nil && s.svc.Advisor.Configured(),
		})
	})
	r.Handle("/metrics", promhttp.Handler())

	// The change stream outlives the request timeout.
	r.Get("/api/events", s.handleEvents)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.opts.RequestTimeout))

		r.Get("/api/dashboard", s.handleDashboard)
		r.Get("/api/metrics/daily", s.handleDailyBurn)
		r.Get("/api/metrics/weekly", s.handleWeekly)
		r.Get("/api/reports/weekly.xlsx", s.handleWeeklyExport)

		r.Get("/api/employees", s.handleListEmployees)
		r.Post("/api/employees", s.handleCreateEmployee)
		r.Get("/api/employees/{id}", s.handleGetEmployee)
		r.Patch("/api/employees/{id}", s.handleUpdateEmployee)

		r.Get("/api/task-logs", s.handleListTaskLogs)
		r.Post("/api/task-logs", s.handleLogTask)

		r.Get("/api/clients", s.handleListClients)
		r.Post("/api/clients", s.handleCreateClient)
		r.Get("/api/clients/{id}", s.handleGetClient)
		r.Patch("/api/clients/{id}", s.handleUpdateClient)

		r.Get("/api/case-types", s.handleListCaseTypes)
		r.Post("/api/case-types", s.handleCreateCaseType)
		r.Patch("/api/case-types/{id}", s.handleUpdateCaseType)
		r.Delete("/api/case-types/{id}", s.handleDeleteCaseType)

		r.Get("/api/financials", s.handleGetFinancials)
		r.Patch("/api/financials", s.handleUpdateFinancials)
		r.Post("/api/financials/expenses", s.handleAddExpense)
		r.Delete("/api/financials/expenses/{id}", s.handleDeleteExpense)

		r.Get("/api/cashbox", s.handleGetCashbox)
		r.Post("/api/cashbox", s.handleRecordTransaction)

		r.Get("/api/income", s.handleListIncome)
		r.Post("/api/income", s.handleRecordIncome)

		r.Get("/api/tickets", s.handleListTickets)
		r.Post("/api/tickets", s.handleCreateTicket)
		r.Patch("/api/tickets/{id}", s.handleUpdateTicket)
		r.Post("/api/tickets/{id}/resolve", s.handleResolveTicket)

		r.Get("/api/activity", s.handleListActivity)

		r.Post("/api/chat", s.handleChat)
	})

	return r
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// fail maps a service error onto a status. Store failures are logged and
// never leak their cause.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case app.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decode reads a JSON body into v, writing a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return n, nil
}

// instrument records request counts and latency by route pattern.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		observability.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// actor carries the X-Firm-Actor header into the request context.
func actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name := strings.TrimSpace(r.Header.Get(ActorHeader)); name != "" {
			r = r.WithContext(ctxutil.WithActorID(r.Context(), name))
		}
		next.ServeHTTP(w, r)
	})
}

// cors adds CORS headers for the configured origins.
func (s *Server) cors(next http.Handler) http.Handler {
	allowAll := len(s.opts.AllowedOrigins) == 0 || slices.Contains(s.opts.AllowedOrigins, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case allowAll:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(s.opts.AllowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+ActorHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
