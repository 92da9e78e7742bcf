package web

import "net/http"

// viewGrades lists every grade row belonging to the session's user id. Other
// users' grades are unreachable by construction: the id comes from the
// validated session token, never from the request.
func (s *Server) viewGrades(w http.ResponseWriter, r *http.Request) {
	id := GetIdentity(r.Context())

	grades, err := s.store.ListGradesByStudent(r.Context(), id.UserID)
	if err != nil {
		s.serverError(w, "list grades", err)
		return
	}
	s.render(w, http.StatusOK, "grades.html", pageData{Grades: grades})
}
