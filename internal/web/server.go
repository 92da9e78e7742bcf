// Package web is the HTTP surface of the portal: route table, session
// middleware, form handlers, and file exports.
package web

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rmacalintal/studentportal/internal/auth"
	"github.com/rmacalintal/studentportal/internal/storage"
)

// Server holds the collaborators shared by all handlers.
type Server struct {
	store    storage.Store
	sessions *auth.SessionManager
	authn    *auth.Authenticator
	validate *validator.Validate
}

// NewServer creates the HTTP server layer over the given store and session
// manager.
func NewServer(store storage.Store, sessions *auth.SessionManager) *Server {
	return &Server{
		store:    store,
		sessions: sessions,
		authn:    auth.NewAuthenticator(store),
		validate: validator.New(),
	}
}

// Handler builds the full route table wrapped in identity, logging and
// metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.home)

	mux.HandleFunc("GET /admin", s.adminLoginForm)
	mux.HandleFunc("POST /admin", s.adminLogin)
	mux.HandleFunc("GET /admin/dashboard", s.requireAdmin(s.adminDashboard))
	mux.HandleFunc("GET /admin/add_student", s.requireAdmin(s.addStudentForm))
	mux.HandleFunc("POST /admin/add_student", s.requireAdmin(s.addStudent))
	mux.HandleFunc("GET /admin/view_students", s.requireAdmin(s.viewStudents))

	mux.HandleFunc("GET /login", s.userLoginForm)
	mux.HandleFunc("POST /login", s.userLogin)
	mux.HandleFunc("GET /dashboard", s.requireUser(s.userDashboard))
	mux.HandleFunc("GET /logout", s.logout)
	mux.HandleFunc("GET /grades", s.requireUser(s.viewGrades))

	mux.HandleFunc("GET /export_students", s.requireAdmin(s.exportStudents))
	mux.HandleFunc("GET /export_grades_pdf", s.requireUser(s.exportGradesPDF))

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return loggingMiddleware(s.withIdentity(metricsMiddleware(mux)))
}
