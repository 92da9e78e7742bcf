package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rmacalintal/studentportal/internal/models"
	"github.com/rmacalintal/studentportal/internal/storage"
)

// studentForm is the typed record parsed from the add-student form. Numeric
// fields are converted before validation so non-numeric input is rejected
// instead of passed through to storage as text.
type studentForm struct {
	ID        string `validate:"required"`
	Name      string `validate:"required"`
	Age       int    `validate:"gte=1,lte=150"`
	YearLevel int    `validate:"gte=1,lte=10"`
	Section   string `validate:"required"`
	Course    string `validate:"required"`
}

// parseStudentForm converts the raw form values into a studentForm. The
// returned message is user-visible; it is empty when parsing succeeded.
func (s *Server) parseStudentForm(r *http.Request) (*studentForm, string) {
	age, err := strconv.Atoi(r.PostFormValue("age"))
	if err != nil {
		return nil, "Age must be a number."
	}
	year, err := strconv.Atoi(r.PostFormValue("year_level"))
	if err != nil {
		return nil, "Year level must be a number."
	}

	form := &studentForm{
		ID:        r.PostFormValue("id"),
		Name:      r.PostFormValue("name"),
		Age:       age,
		YearLevel: year,
		Section:   r.PostFormValue("section"),
		Course:    r.PostFormValue("course"),
	}
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Sprintf("Invalid student record: %v", err)
	}
	return form, ""
}

func (s *Server) addStudentForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "add_student.html", pageData{})
}

// addStudent inserts a new student row. A duplicate id is surfaced as a
// visible error on the form, never an unhandled failure.
func (s *Server) addStudent(w http.ResponseWriter, r *http.Request) {
	form, msg := s.parseStudentForm(r)
	if msg != "" {
		s.render(w, http.StatusOK, "add_student.html", pageData{Error: msg})
		return
	}

	student := &models.Student{
		ID:        form.ID,
		Name:      form.Name,
		Age:       form.Age,
		YearLevel: form.YearLevel,
		Section:   form.Section,
		Course:    form.Course,
	}
	if err := s.store.CreateStudent(r.Context(), student); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			s.render(w, http.StatusOK, "add_student.html", pageData{
				Error: fmt.Sprintf("Student with id %q already exists.", form.ID),
			})
			return
		}
		s.serverError(w, "add student", err)
		return
	}

	slog.Info("Student added", "id", student.ID)
	notice := url.QueryEscape("Student added successfully!")
	http.Redirect(w, r, "/admin/dashboard?notice="+notice, http.StatusSeeOther)
}

func (s *Server) viewStudents(w http.ResponseWriter, r *http.Request) {
	students, err := s.store.ListStudents(r.Context())
	if err != nil {
		s.serverError(w, "list students", err)
		return
	}
	s.render(w, http.StatusOK, "view_students.html", pageData{Students: students})
}
