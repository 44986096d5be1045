package model

import "errors"

var (
	// ErrNameRequired indicates that the student name is missing.
	ErrNameRequired = errors.New("student name is required")
	// ErrRollNumberRequired indicates that the roll number is missing.
	ErrRollNumberRequired = errors.New("roll number is required")
	// ErrInvalidStudentID indicates that the student id is not a positive integer.
	ErrInvalidStudentID = errors.New("invalid student id")
)
