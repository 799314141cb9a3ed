// Package storagetest holds the behaviour every storage.Storage backend
// must share. Backend packages call Run from their own tests.
package storagetest

import (
	"testing"

	"github.com/aanand-mishra/student-records/internal/storage"
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aadarsh = types.NewStudent(1, "Aadarsh", 20, "CSE", 85, "aadarsh@email.com")
	rahul   = types.NewStudent(2, "Rahul", 21, "ECE", 78, "rahul@email.com")
)

// Run exercises a fresh backend returned by newStorage for every case.
func Run(t *testing.T, newStorage func(t *testing.T) storage.Storage) {
	t.Run("empty store", func(t *testing.T) {
		s := newStorage(t)

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.NotNil(t, students)
		assert.Empty(t, students)

		_, found, err := s.GetStudentByID(1)
		require.NoError(t, err)
		assert.False(t, found)

		deleted, err := s.DeleteStudentByID(1)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("add keeps insertion order", func(t *testing.T) {
		s := newStorage(t)
		expect := []types.Student{
			types.NewStudent(5, "E", 20, "CSE", 50, "e@x.io"),
			types.NewStudent(3, "C", 21, "ECE", 60, "c@x.io"),
			types.NewStudent(9, "I", 22, "ME", 70, "i@x.io"),
			types.NewStudent(1, "A", 23, "CE", 80, "a@x.io"),
		}
		for _, student := range expect {
			require.NoError(t, s.AddStudent(student))
		}

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.Equal(t, expect, students)
	})

	t.Run("find returns inserted fields", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.AddStudent(aadarsh))
		require.NoError(t, s.AddStudent(rahul))

		student, found, err := s.GetStudentByID(2)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, rahul, student)

		_, found, err = s.GetStudentByID(42)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("unvalidated values are stored as given", func(t *testing.T) {
		s := newStorage(t)
		odd := types.NewStudent(-1, "", 200, "", -5, "nope")
		require.NoError(t, s.AddStudent(odd))
		require.NoError(t, s.AddStudent(types.Student{}))

		student, found, err := s.GetStudentByID(-1)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, odd, student)

		student, found, err = s.GetStudentByID(0)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, types.Student{}, student)
	})

	t.Run("delete removes one record", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.AddStudent(aadarsh))
		require.NoError(t, s.AddStudent(rahul))

		deleted, err := s.DeleteStudentByID(2)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, found, err := s.GetStudentByID(2)
		require.NoError(t, err)
		assert.False(t, found)

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.Equal(t, []types.Student{aadarsh}, students)
	})

	t.Run("delete of missing id leaves store unchanged", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.AddStudent(aadarsh))
		require.NoError(t, s.AddStudent(rahul))

		deleted, err := s.DeleteStudentByID(3)
		require.NoError(t, err)
		assert.False(t, deleted)

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.Equal(t, []types.Student{aadarsh, rahul}, students)
	})

	t.Run("duplicate ids use first match", func(t *testing.T) {
		s := newStorage(t)
		first := types.NewStudent(7, "First", 20, "CSE", 90, "first@x.io")
		middle := types.NewStudent(8, "Middle", 20, "CSE", 90, "middle@x.io")
		second := types.NewStudent(7, "Second", 30, "ECE", 40, "second@x.io")
		require.NoError(t, s.AddStudent(first))
		require.NoError(t, s.AddStudent(middle))
		require.NoError(t, s.AddStudent(second))

		student, found, err := s.GetStudentByID(7)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, first, student)

		deleted, err := s.DeleteStudentByID(7)
		require.NoError(t, err)
		assert.True(t, deleted)

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.Equal(t, []types.Student{middle, second}, students)

		student, found, err = s.GetStudentByID(7)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, second, student)

		deleted, err = s.DeleteStudentByID(7)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, found, err = s.GetStudentByID(7)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("add after delete appends at the end", func(t *testing.T) {
		s := newStorage(t)
		require.NoError(t, s.AddStudent(aadarsh))
		require.NoError(t, s.AddStudent(rahul))

		deleted, err := s.DeleteStudentByID(2)
		require.NoError(t, err)
		require.True(t, deleted)

		require.NoError(t, s.AddStudent(rahul))
		deleted, err = s.DeleteStudentByID(1)
		require.NoError(t, err)
		require.True(t, deleted)
		require.NoError(t, s.AddStudent(aadarsh))

		students, err := s.GetStudents()
		require.NoError(t, err)
		assert.Equal(t, []types.Student{rahul, aadarsh}, students)
	})
}
