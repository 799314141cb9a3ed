// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The default data source is ":memory:", so records live only as long
// as the process, the same as the memory backend. A file path works too.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/aanand-mishra/student-records/internal/config"
	"github.com/aanand-mishra/student-records/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the database at cfg.Storage.Path, creates the students table
// if it does not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Every new connection to ":memory:" gets its own empty database.
	// One connection keeps all statements on the same one.
	db.SetMaxOpenConns(1)

	// No PRIMARY KEY on id: duplicate identifiers are accepted.
	// Insertion order is the implicit rowid.
	//
	// Schema:
	//   id     — caller-supplied student identifier
	//   name   — student's full name
	//   age    — age in years
	//   course — course code, e.g. "CSE"
	//   marks  — marks obtained
	//   email  — contact address
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id     INTEGER NOT NULL,
			name   TEXT    NOT NULL,
			age    INTEGER NOT NULL,
			course TEXT    NOT NULL,
			marks  INTEGER NOT NULL,
			email  TEXT    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the underlying connection. With an in-memory database
// this also discards every record.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// AddStudent appends a row. Placeholders keep values out of the SQL text.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) AddStudent(student types.Student) error {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (id, name, age, course, marks, email) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("AddStudent: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(student.ID, student.Name, student.Age, student.Course, student.Marks, student.Email)
	if err != nil {
		return fmt.Errorf("AddStudent: exec: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudentByID fetches the earliest inserted row with the given id.
//
// ORDER BY rowid LIMIT 1 gives first-match semantics when ids repeat.
// sql.ErrNoRows is translated into found == false.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetStudentByID(id int) (types.Student, bool, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, age, course, marks, email FROM students WHERE id = ? ORDER BY rowid LIMIT 1",
	)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student

	err = stmt.QueryRow(id).Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Course,
		&student.Marks,
		&student.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, false, nil
		}
		return types.Student{}, false, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, true, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudents returns all rows in insertion (rowid) order.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, age, course, marks, email FROM students ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Age,
			&student.Course,
			&student.Marks,
			&student.Email,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DeleteStudentByID removes only the earliest inserted row with the given
// id. The subquery picks that row's rowid; RowsAffected tells us whether
// anything matched.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) DeleteStudentByID(id int) (bool, error) {
	stmt, err := s.Db.Prepare(
		"DELETE FROM students WHERE rowid = (SELECT rowid FROM students WHERE id = ? ORDER BY rowid LIMIT 1)",
	)
	if err != nil {
		return false, fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return false, fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteStudentByID: rows affected: %w", err)
	}

	return affected > 0, nil
}
