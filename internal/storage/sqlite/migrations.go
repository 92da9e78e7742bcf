package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database.
// These run on startup to ensure tables exist.
//
// The courses and subjects tables carry no application behavior; they are kept
// so the database stays readable by external tools that expect the full
// layout. Relationships are implicit via matching text fields: grades refers
// to users by id with no foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS admins (
    username TEXT PRIMARY KEY,
    password_hash TEXT
);

CREATE TABLE IF NOT EXISTS students (
    id TEXT PRIMARY KEY,
    name TEXT,
    age INTEGER,
    year_level INTEGER,
    section TEXT,
    course TEXT
);

CREATE TABLE IF NOT EXISTS courses (
    course TEXT PRIMARY KEY,
    sections TEXT
);

CREATE TABLE IF NOT EXISTS subjects (
    subject TEXT,
    course TEXT,
    section TEXT,
    year INTEGER
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT,
    age INTEGER,
    role TEXT,
    username TEXT,
    password_hash TEXT,
    course TEXT,
    section TEXT,
    year INTEGER,
    subjects TEXT
);

CREATE TABLE IF NOT EXISTS grades (
    student_id TEXT,
    subject TEXT,
    grade REAL
);

CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id);
CREATE INDEX IF NOT EXISTS idx_users_username_role ON users(username, role);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
