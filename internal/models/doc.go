// Package models defines the core domain records for the student portal.
//
// All records are identified by natural keys (admin username, student id,
// user id); there are no surrogate auto-increment ids.
//
// # Identity split
//
// Student and User are deliberately disjoint tables with overlapping purpose:
// a Student row is a registrar record created by an admin, while a User row is
// a login-capable account whose id is referenced by Grade rows. Nothing ties
// Student.ID to User.ID. This mirrors the upstream database layout and is kept
// so existing data stays readable.
//
// # Design principles
//
//  1. Plain structs, no ORM tags; the storage layer owns the SQL.
//  2. Relationships are by matching id strings, not pointers.
//  3. Passwords are stored as bcrypt hashes, never plaintext.
package models
