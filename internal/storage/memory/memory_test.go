package memory

import (
	"testing"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/storage/storagetest"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Storage = (*Memory)(nil)

func TestMemory(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		return New()
	})
}

func TestMemory_GetStudentsReturnsCopy(t *testing.T) {
	m := New()
	require.NoError(t, m.AddStudent(types.NewStudent(1, "Aadarsh", 20, "CSE", 85, "aadarsh@email.com")))

	students, err := m.GetStudents()
	require.NoError(t, err)
	students[0].Name = "changed"

	student, found, err := m.GetStudentByID(1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Aadarsh", student.Name)
}
