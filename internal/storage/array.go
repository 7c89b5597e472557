package storage

import (
	"errors"

	"resume-storage/internal/resumes"
)

// DefaultCapacity is the number of resumes a storage holds when no capacity is
// configured.
const DefaultCapacity = 10000

// Storage is the CRUD contract shared by every resume storage.
type Storage interface {
	Clear()
	Save(r resumes.Resume) error
	Update(r resumes.Resume) error
	Get(uuid string) (resumes.Resume, error)
	Delete(uuid string) error
	GetAll() []resumes.Resume
	Size() int
}

// ArrayStorage keeps resumes in a fixed-length backing array. The occupied
// slots are always records[:size]; the Indexer decides where a UUID lives.
//
// ArrayStorage is not safe for concurrent use.
type ArrayStorage struct {
	records  []resumes.Resume
	size     int
	capacity int
	index    Indexer
}

// New constructs an empty storage holding at most capacity resumes.
func New(capacity int, index Indexer) (*ArrayStorage, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if index == nil {
		return nil, errors.New("indexer is required")
	}
	return &ArrayStorage{
		records:  make([]resumes.Resume, capacity),
		capacity: capacity,
		index:    index,
	}, nil
}

// NewArrayStorage constructs a storage with the linear strategy.
func NewArrayStorage(capacity int) (*ArrayStorage, error) {
	return New(capacity, Linear{})
}

// NewSortedArrayStorage constructs a storage with the sorted strategy.
func NewSortedArrayStorage(capacity int) (*ArrayStorage, error) {
	return New(capacity, Sorted{})
}

// Capacity returns the maximum number of resumes.
func (s *ArrayStorage) Capacity() int { return s.capacity }

// Strategy returns the indexer name.
func (s *ArrayStorage) Strategy() string { return s.index.Name() }

// Clear removes every resume.
func (s *ArrayStorage) Clear() {
	clear(s.records[:s.size])
	s.size = 0
}

// Save inserts a resume with a UUID not already stored.
func (s *ArrayStorage) Save(r resumes.Resume) error {
	idx, found := s.locate(r.UUID)
	if found {
		return existError(r.UUID)
	}
	if s.size == s.capacity {
		return overflowError()
	}
	copy(s.records[idx+1:s.size+1], s.records[idx:s.size])
	s.records[idx] = r
	s.size++
	return nil
}

// Update replaces the stored resume with the same UUID.
func (s *ArrayStorage) Update(r resumes.Resume) error {
	idx, found := s.locate(r.UUID)
	if !found {
		return notExistError("update", r.UUID)
	}
	s.records[idx] = r
	return nil
}

// Get returns the resume stored under uuid.
func (s *ArrayStorage) Get(uuid string) (resumes.Resume, error) {
	idx, found := s.locate(uuid)
	if !found {
		return resumes.Resume{}, notExistError("get", uuid)
	}
	return s.records[idx], nil
}

// Delete removes the resume stored under uuid and compacts the occupied slots.
func (s *ArrayStorage) Delete(uuid string) error {
	idx, found := s.locate(uuid)
	if !found {
		return notExistError("delete", uuid)
	}
	copy(s.records[idx:s.size-1], s.records[idx+1:s.size])
	s.size--
	s.records[s.size] = resumes.Resume{}
	return nil
}

// GetAll returns a copy of the stored resumes in storage order.
func (s *ArrayStorage) GetAll() []resumes.Resume {
	out := make([]resumes.Resume, s.size)
	copy(out, s.records[:s.size])
	return out
}

// Size returns the number of stored resumes.
func (s *ArrayStorage) Size() int {
	return s.size
}

func (s *ArrayStorage) locate(uuid string) (int, bool) {
	return s.index.Locate(s.records[:s.size], uuid)
}

var _ Storage = (*ArrayStorage)(nil)
