package models

// Student is a registrar record created by an admin.
// It has no login credentials; see User for login-capable accounts.
type Student struct {
	// ID is the school-assigned student number (primary key, e.g. "S1").
	ID string

	// Name is the student's full name.
	Name string

	// Age in years.
	Age int

	// YearLevel is the student's current year (1..n).
	YearLevel int

	// Section within the course (e.g. "A").
	Section string

	// Course is the program name (e.g. "BSCS").
	Course string
}
