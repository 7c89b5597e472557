package resumes

import (
	"strings"

	"github.com/google/uuid"
)

// Resume is a stored record identified by its UUID.
type Resume struct {
	UUID     string
	FullName string
}

// New builds a resume with a freshly generated UUID.
func New(fullName string) Resume {
	return Resume{
		UUID:     uuid.NewString(),
		FullName: strings.TrimSpace(fullName),
	}
}

// WithUUID builds a resume with an explicit UUID.
func WithUUID(id, fullName string) Resume {
	return Resume{
		UUID:     id,
		FullName: strings.TrimSpace(fullName),
	}
}

// HasUUID reports whether the resume is identified by id. Storage lookups use
// this and never Equal.
func (r Resume) HasUUID(id string) bool {
	return r.UUID == id
}

// Equal compares every field of both resumes.
func (r Resume) Equal(other Resume) bool {
	return r == other
}

func (r Resume) String() string {
	if r.FullName == "" {
		return r.UUID
	}
	return r.UUID + " " + r.FullName
}
