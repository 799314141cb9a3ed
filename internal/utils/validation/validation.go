// Package validation provides stand-alone checks for student attributes.
//
// The checks are plain predicates with no side effects. Nothing in the
// storage or service layers calls them: a record is stored exactly as
// given. Callers that want to reject bad input run these first.
//
// All rules are expressed as go-playground/validator tags so the single
// value checks and the whole-record check (Student) cannot drift apart.
package validation

import (
	"github.com/aanand-mishra/student-records/internal/types"
	"github.com/go-playground/validator/v10"
)

// Rule tags, shared with the validate:"..." tags on types.Student.
const (
	emailRule = "contains=@,contains=."
	marksRule = "min=0,max=100"
	ageRule   = "min=16,max=60"
)

// A single *validator.Validate caches struct metadata and is safe for
// concurrent use.
var validate = validator.New()

// IsValidEmail reports whether email is non-empty and contains both an
// "@" and a ".". It is a superficial syntactic check, not an RFC 5322
// parser: "a@b.com" passes, so does "@.".
func IsValidEmail(email string) bool {
	return validate.Var(email, emailRule) == nil
}

// IsValidMarks reports whether marks lies in [0, 100].
func IsValidMarks(marks int) bool {
	return validate.Var(marks, marksRule) == nil
}

// IsValidAge reports whether age lies in [16, 60].
func IsValidAge(age int) bool {
	return validate.Var(age, ageRule) == nil
}

// Student checks every tagged field of s. It returns nil when s passes,
// otherwise a validator.ValidationErrors with one entry per failing field.
func Student(s types.Student) error {
	return validate.Struct(s)
}
