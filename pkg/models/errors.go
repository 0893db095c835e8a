package models

import (
	"errors"
	"fmt"
)

// ErrDirectoryAccess indicates the workflows directory could not be listed.
var ErrDirectoryAccess = errors.New("cannot access workflows directory")

// ErrRead indicates a record file could not be read.
var ErrRead = errors.New("cannot read record")

// ErrParse indicates a record file does not hold a JSON object.
var ErrParse = errors.New("cannot parse record")

// ErrMissingField indicates a field needed to fill in defaults is absent.
var ErrMissingField = errors.New("missing required field")

// ErrWrite indicates a record could not be serialized or written back.
var ErrWrite = errors.New("cannot write record")

// FieldError describes a problem with one top-level field of a record.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
