/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/employees/*        Driver management
  /api/schools/*          School management
  /api/assignments/*      Circuit assignments
  /api/temporary-tasks/*  One-off tasks
  /api/absences/*         Absences
  /api/holidays/*         Holidays
  /api/temporary-reassignments/*  Day-scoped overrides
  /api/schedule           Weekly board computation
  /api/check-conflict     Conflict validation
  /api/reports/*          Payroll reports
  /api/auth/*, /api/admins/*, /api/init-data
  /api/scenarios/*        Demo data loaders (dev only)

SECURITY NOTE:
  Login exists for the frontend's gate only; no middleware enforces it.
  Do not expose this server directly to the internet.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
// corsOrigins lists the allowed frontend origins.
func NewRouter(h *Handler, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
		})

		r.Route("/schools", func(r chi.Router) {
			r.Get("/", h.ListSchools)
			r.Post("/", h.CreateSchool)
			r.Put("/{id}", h.UpdateSchool)
			r.Delete("/{id}", h.DeleteSchool)
		})

		r.Route("/assignments", func(r chi.Router) {
			r.Get("/", h.ListAssignments)
			r.Post("/", h.CreateAssignment)
			r.Get("/{id}", h.GetAssignment)
			r.Put("/{id}", h.UpdateAssignment)
			r.Delete("/{id}", h.DeleteAssignment)
		})

		r.Route("/temporary-tasks", func(r chi.Router) {
			r.Get("/", h.ListTemporaryTasks)
			r.Post("/", h.CreateTemporaryTask)
			r.Put("/{id}", h.UpdateTemporaryTask)
			r.Delete("/{id}", h.DeleteTemporaryTask)
		})

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", h.ListAbsences)
			r.Post("/", h.CreateAbsence)
			r.Put("/{id}", h.UpdateAbsence)
			r.Delete("/{id}", h.DeleteAbsence)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListHolidays)
			r.Post("/", h.CreateHoliday)
			r.Delete("/{id}", h.DeleteHoliday)
		})

		r.Route("/temporary-reassignments", func(r chi.Router) {
			r.Get("/", h.ListReassignments)
			r.Post("/", h.CreateReassignment)
			r.Delete("/{id}", h.DeleteReassignment)
			r.Delete("/by-date/{date}", h.DeleteReassignmentsByDate)
		})

		r.Get("/schedule", h.GetSchedule)
		r.Post("/check-conflict", h.CheckConflict)
		r.Get("/reports/hours", h.GetHoursReport)

		r.Post("/auth/login", h.Login)
		r.Route("/admins", func(r chi.Router) {
			r.Get("/", h.ListAdmins)
			r.Post("/", h.CreateAdmin)
			r.Delete("/{id}", h.DeleteAdmin)
		})
		r.Post("/init-data", h.InitData)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Get("/current", h.GetCurrentScenario)
			r.Post("/load", h.LoadScenario)
		})
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Les Berlines - API de gestion des horaires",
		})
	})

	return r
}
