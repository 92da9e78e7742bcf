package models

// Grade is one subject grade for a user. StudentID references User.ID by
// convention only; the schema does not enforce it.
type Grade struct {
	// StudentID is the User.ID this grade belongs to.
	StudentID string

	// Subject name (e.g. "Mathematics").
	Subject string

	// Grade is the numeric mark.
	Grade float64
}
