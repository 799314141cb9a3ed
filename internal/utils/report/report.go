// Package report renders student data and validation failures as
// console text.
//
// Every listing in this application has the same shape. Rather than
// repeating the label layout wherever records are printed, we
// centralise it here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/go-playground/validator/v10"
)

// NoStudents is printed instead of a listing when there is nothing to show.
const NoStudents = "No students found."

// Separator closes every record block in a listing.
const Separator = "---------------------------"

// ─────────────────────────────────────────────────────────────────────────────
// WriteStudents writes one block per student, in slice order:
//
//	Id      : 1
//	Name    : Aadarsh
//	Age     : 20
//	Course  : CSE
//	Marks   : 85
//	Email   : aadarsh@email.com
//	---------------------------
//
// An empty slice produces the single line NoStudents.
// ─────────────────────────────────────────────────────────────────────────────
func WriteStudents(w io.Writer, students []types.Student) error {
	if len(students) == 0 {
		_, err := fmt.Fprintln(w, NoStudents)
		return err
	}

	for _, s := range students {
		if _, err := fmt.Fprintf(w,
			"Id      : %d\nName    : %s\nAge     : %d\nCourse  : %s\nMarks   : %d\nEmail   : %s\n%s\n",
			s.ID, s.Name, s.Age, s.Course, s.Marks, s.Email, Separator,
		); err != nil {
			return err
		}
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts a slice of validator.FieldError values into
// a single human-readable line, one clause per failing field:
//
//	field Age must be between 16 and 60, field Email must be a valid email address
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.Field() {
		case "Age":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be between 16 and 60", e.Field()))
		case "Marks":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be between 0 and 100", e.Field()))
		case "Email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
