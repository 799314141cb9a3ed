// Package storage defines the Storage interface — the contract every
// student-record backend satisfies.
//
// The service layer depends only on this interface, so the in-memory
// slice and the SQLite backend are interchangeable: main picks one from
// config and nothing else changes.
//
// Every backend keeps records in insertion order and tolerates duplicate
// identifiers. Lookups and deletes act on the FIRST matching record.
package storage

import "github.com/aanand-mishra/student-records/internal/types"

// Storage is the record-store contract.
type Storage interface {
	// AddStudent appends a record to the end of the collection.
	// No uniqueness or validity check is made.
	AddStudent(student types.Student) error

	// GetStudents returns every record in insertion order.
	// Returns an empty slice (not nil) when there are none.
	GetStudents() ([]types.Student, error)

	// GetStudentByID returns the first record whose ID equals id.
	// The bool is false when no record matches; that is not an error.
	GetStudentByID(id int) (types.Student, bool, error)

	// DeleteStudentByID removes the first record whose ID equals id and
	// reports whether one was removed. At most one record goes per call.
	DeleteStudentByID(id int) (bool, error)
}

// Driver names accepted by config.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)
