// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles —
// storage, service, validation and report can all import types without
// depending on each other.
package types

// Student represents one student record.
//
// Fields are exported so callers read and write them directly; there is
// no getter/setter layer and nothing is checked on assignment. Any
// combination of values is constructible, including the zero value.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — the field names used when a record is encoded.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. They are only evaluated when a caller explicitly asks
//     (see validation.Student); storing a record never runs them.
type Student struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"    validate:"min=16,max=60"`
	Course string `json:"course"`
	Marks  int    `json:"marks"  validate:"min=0,max=100"`
	Email  string `json:"email"  validate:"contains=@,contains=."`
}

// NewStudent returns a Student with every attribute set.
func NewStudent(id int, name string, age int, course string, marks int, email string) Student {
	return Student{
		ID:     id,
		Name:   name,
		Age:    age,
		Course: course,
		Marks:  marks,
		Email:  email,
	}
}
