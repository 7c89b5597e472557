package storage

import "resume-storage/internal/resumes"

// Sorted binary searches occupied slots, which the engine keeps ordered by
// UUID ascending.
type Sorted struct{}

func (Sorted) Name() string { return StrategySorted }

// Locate returns the slot holding uuid, or the lowest slot whose UUID sorts
// after it (len(occupied) when uuid is the greatest).
func (Sorted) Locate(occupied []resumes.Resume, uuid string) (int, bool) {
	lo, hi := 0, len(occupied)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if occupied[mid].UUID < uuid {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(occupied) && occupied[lo].HasUUID(uuid) {
		return lo, true
	}
	return lo, false
}

var _ Indexer = Sorted{}
