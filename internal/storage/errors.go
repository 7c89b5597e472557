package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrExist indicates a resume with the same UUID is already stored.
	ErrExist = errors.New("already exists")

	// ErrNotExist indicates no resume with the UUID is stored.
	ErrNotExist = errors.New("does not exist")

	// ErrOverflow indicates the storage is at capacity.
	ErrOverflow = errors.New("storage overflow")

	// ErrInvalidCapacity indicates a non-positive capacity at construction.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrUnknownStrategy indicates an unsupported indexing strategy name.
	ErrUnknownStrategy = errors.New("unknown indexing strategy")
)

// Error describes a failed storage operation. UUID is empty for ErrOverflow.
type Error struct {
	Op   string
	UUID string
	Err  error
}

func (e *Error) Error() string {
	if e.UUID == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s: resume %s %v", e.Op, e.UUID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UUIDOf returns the UUID carried by a storage error, or "" if there is none.
func UUIDOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.UUID
	}
	return ""
}

func existError(uuid string) error {
	return &Error{Op: "save", UUID: uuid, Err: ErrExist}
}

func notExistError(op, uuid string) error {
	return &Error{Op: op, UUID: uuid, Err: ErrNotExist}
}

func overflowError() error {
	return &Error{Op: "save", Err: ErrOverflow}
}
