package web

import (
	"log/slog"
	"net/http"

	"github.com/rmacalintal/studentportal/internal/auth"
)

// invalidCredentials is the single notice shown for every failed login.
// Unknown accounts and wrong passwords are indistinguishable on purpose.
const invalidCredentials = "Invalid credentials!"

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "index.html", pageData{})
}

func (s *Server) adminLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "admin_login.html", pageData{Notice: r.URL.Query().Get("notice")})
}

// adminLogin checks the username+password pair against the admins table and,
// on a match, issues an admin session.
func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	admin, err := s.authn.AuthenticateAdmin(r.Context(), username, password)
	if err != nil {
		slog.Warn("Admin login failed", "username", username)
		s.render(w, http.StatusOK, "admin_login.html", pageData{Notice: invalidCredentials})
		return
	}

	token, err := s.sessions.Issue(auth.AdminIdentity(admin.Username))
	if err != nil {
		s.serverError(w, "admin login", err)
		return
	}
	s.setSession(w, token)

	slog.Info("Admin logged in", "username", admin.Username)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (s *Server) adminDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "admin_dashboard.html", pageData{Notice: r.URL.Query().Get("notice")})
}

func (s *Server) userLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "user_login.html", pageData{Notice: r.URL.Query().Get("notice")})
}

// userLogin checks the username+password+role triple against the users table
// and, on an exact match, issues a user session carrying the id and role.
func (s *Server) userLogin(w http.ResponseWriter, r *http.Request) {
	role := r.PostFormValue("role")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := s.authn.AuthenticateUser(r.Context(), username, password, role)
	if err != nil {
		slog.Warn("User login failed", "username", username, "role", role)
		s.render(w, http.StatusOK, "user_login.html", pageData{Notice: invalidCredentials})
		return
	}

	token, err := s.sessions.Issue(auth.UserIdentity(user.ID, user.Role))
	if err != nil {
		s.serverError(w, "user login", err)
		return
	}
	s.setSession(w, token)

	slog.Info("User logged in", "user_id", user.ID, "role", user.Role)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) userDashboard(w http.ResponseWriter, r *http.Request) {
	id := GetIdentity(r.Context())
	s.render(w, http.StatusOK, "user_dashboard.html", pageData{
		Role:   id.Role,
		Notice: r.URL.Query().Get("notice"),
	})
}

// logout clears the session cookie unconditionally, whichever identity marker
// was set, and returns to the landing page.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
