package models

// Admin is a back-office account. Exactly one is seeded at first startup;
// the application never creates, mutates, or deletes admins.
type Admin struct {
	// Username is the primary key.
	Username string

	// PasswordHash is the bcrypt hash of the admin's password.
	PasswordHash string
}

// User is a login-capable student/staff account. It is distinct from Student:
// Grade rows reference User.ID, not Student.ID. Accounts are seeded
// externally; no registration route exists.
type User struct {
	// ID is the account's primary key. Grade.StudentID refers to this value.
	ID string

	// Name is the account holder's full name.
	Name string

	// Age in years.
	Age int

	// Role is the label the account logs in under (e.g. "student").
	// Login requires an exact username+password+role match.
	Role string

	// Username used at login.
	Username string

	// PasswordHash is the bcrypt hash of the account's password.
	PasswordHash string

	// Course, Section and Year describe the account's enrollment.
	Course  string
	Section string
	Year    int

	// Subjects is a free-form list of enrolled subjects, stored as text.
	Subjects string
}
