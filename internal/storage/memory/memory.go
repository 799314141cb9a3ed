// Package memory provides the default storage.Storage implementation: an
// ordered slice scanned linearly.
//
// The collection is expected to stay small, so lookups walk it from the
// front rather than keeping an index. An index keyed by ID would also
// break first-match behaviour for duplicate IDs.
package memory

import (
	"github.com/aanand-mishra/student-records/internal/types"
)

// Memory is not safe for concurrent use.
type Memory struct {
	students []types.Student
}

// New returns an empty store.
func New() *Memory {
	return &Memory{}
}

// AddStudent never fails.
func (m *Memory) AddStudent(student types.Student) error {
	m.students = append(m.students, student)
	return nil
}

// GetStudents returns a copy so callers cannot mutate the stored records.
func (m *Memory) GetStudents() ([]types.Student, error) {
	students := make([]types.Student, len(m.students))
	copy(students, m.students)
	return students, nil
}

func (m *Memory) GetStudentByID(id int) (types.Student, bool, error) {
	if i := m.indexOf(id); i >= 0 {
		return m.students[i], true, nil
	}
	return types.Student{}, false, nil
}

func (m *Memory) DeleteStudentByID(id int) (bool, error) {
	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.students = append(m.students[:i], m.students[i+1:]...)
	return true, nil
}

func (m *Memory) indexOf(id int) int {
	for i := range m.students {
		if m.students[i].ID == id {
			return i
		}
	}
	return -1
}
