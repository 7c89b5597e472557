package storage

import "resume-storage/internal/resumes"

// Linear scans occupied slots in order. New resumes are appended.
type Linear struct{}

func (Linear) Name() string { return StrategyLinear }

// Locate returns the first slot holding uuid, or len(occupied) as the append
// position.
func (Linear) Locate(occupied []resumes.Resume, uuid string) (int, bool) {
	for i := range occupied {
		if occupied[i].HasUUID(uuid) {
			return i, true
		}
	}
	return len(occupied), false
}

var _ Indexer = Linear{}
