// Package student is the record-store service: add, list, look up and
// delete student records on top of a storage.Storage backend.
//
// Not finding a record is a normal outcome and is reported with a bool.
// An error means the backend itself failed; the memory backend never
// returns one.
package student

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/aanand-mishra/student-records/internal/utils/report"
)

type Service struct {
	storage storage.Storage
	log     *slog.Logger
}

// New wires a Service to a backend. A nil log discards log output.
func New(storage storage.Storage, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{storage: storage, log: log}
}

// Add appends s without checking it.
func (svc *Service) Add(s types.Student) error {
	svc.log.Debug("adding a student", slog.Int("id", s.ID))

	if err := svc.storage.AddStudent(s); err != nil {
		return fmt.Errorf("student.Add: %w", err)
	}
	return nil
}

// List returns every record in insertion order.
func (svc *Service) List() ([]types.Student, error) {
	students, err := svc.storage.GetStudents()
	if err != nil {
		return nil, fmt.Errorf("student.List: %w", err)
	}
	return students, nil
}

// Display writes the listing of every record to w, or the single line
// "No students found." when there are none.
func (svc *Service) Display(w io.Writer) error {
	students, err := svc.List()
	if err != nil {
		return err
	}

	svc.log.Debug("displaying students", slog.Int("count", len(students)))
	return report.WriteStudents(w, students)
}

// SearchByID returns the first record with the given id.
func (svc *Service) SearchByID(id int) (types.Student, bool, error) {
	s, found, err := svc.storage.GetStudentByID(id)
	if err != nil {
		return types.Student{}, false, fmt.Errorf("student.SearchByID: %w", err)
	}

	svc.log.Debug("searched for a student", slog.Int("id", id), slog.Bool("found", found))
	return s, found, nil
}

// Delete removes the first record with the given id and reports whether
// one existed.
func (svc *Service) Delete(id int) (bool, error) {
	deleted, err := svc.storage.DeleteStudentByID(id)
	if err != nil {
		return false, fmt.Errorf("student.Delete: %w", err)
	}

	svc.log.Debug("deleted a student", slog.Int("id", id), slog.Bool("deleted", deleted))
	return deleted, nil
}
