package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/rmacalintal/studentportal/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData carries everything any page needs. Unused fields render as empty.
type pageData struct {
	// Notice is an informational banner (flash-style message).
	Notice string
	// Error is a form-level failure message.
	Error string
	// Role of the logged-in user, shown on the user dashboard.
	Role string

	Students []models.Student
	Grades   []models.Grade
}

// render writes the named template with the given data. Render failures are
// request-scoped: log and emit a plain 500.
func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Template render failed", "template", name, "error", err)
	}
}

// serverError logs the cause and shows the generic failure page.
func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	slog.Error("Request failed", "op", op, "error", err)
	s.render(w, http.StatusInternalServerError, "error.html", pageData{})
}
