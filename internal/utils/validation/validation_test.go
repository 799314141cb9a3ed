package validation

import (
	"errors"
	"testing"

	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	var useCases = []struct {
		description string
		email       string
		expect      bool
	}{
		{description: "plain address", email: "a@b.com", expect: true},
		{description: "demo address", email: "aadarsh@email.com", expect: true},
		{description: "no at or dot", email: "abc", expect: false},
		{description: "empty", email: "", expect: false},
		{description: "at without dot", email: "a@b", expect: false},
		{description: "dot without at", email: "a.b", expect: false},
		{description: "only the two characters", email: "@.", expect: true},
	}

	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, IsValidEmail(useCase.email), useCase.description)
	}
}

func TestIsValidMarks(t *testing.T) {
	var useCases = []struct {
		marks  int
		expect bool
	}{
		{marks: 0, expect: true},
		{marks: 50, expect: true},
		{marks: 100, expect: true},
		{marks: -1, expect: false},
		{marks: 101, expect: false},
	}

	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, IsValidMarks(useCase.marks), "marks=%d", useCase.marks)
	}
}

func TestIsValidAge(t *testing.T) {
	var useCases = []struct {
		age    int
		expect bool
	}{
		{age: 16, expect: true},
		{age: 30, expect: true},
		{age: 60, expect: true},
		{age: 15, expect: false},
		{age: 61, expect: false},
	}

	for _, useCase := range useCases {
		assert.Equal(t, useCase.expect, IsValidAge(useCase.age), "age=%d", useCase.age)
	}
}

func TestStudent(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		s := types.NewStudent(1, "Aadarsh", 20, "CSE", 85, "aadarsh@email.com")
		assert.NoError(t, Student(s))
	})

	t.Run("every rule broken", func(t *testing.T) {
		s := types.NewStudent(1, "Rahul", 15, "ECE", 101, "rahul")
		err := Student(s)
		require.Error(t, err)

		var validateErrs validator.ValidationErrors
		require.True(t, errors.As(err, &validateErrs))

		fields := make([]string, 0, len(validateErrs))
		for _, e := range validateErrs {
			fields = append(fields, e.Field())
		}
		assert.ElementsMatch(t, []string{"Age", "Marks", "Email"}, fields)
	})

	t.Run("zero value fails age and email", func(t *testing.T) {
		err := Student(types.Student{})
		require.Error(t, err)

		var validateErrs validator.ValidationErrors
		require.True(t, errors.As(err, &validateErrs))
		assert.Len(t, validateErrs, 2)
	})
}
