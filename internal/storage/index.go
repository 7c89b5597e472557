package storage

import (
	"fmt"
	"strings"

	"resume-storage/internal/resumes"
)

const (
	// StrategyLinear keeps resumes in insertion order and scans them.
	StrategyLinear = "linear"
	// StrategySorted keeps resumes ordered by UUID and binary searches them.
	StrategySorted = "sorted"
)

// Indexer locates a UUID among the occupied slots of the backing array.
//
// When the UUID is present Locate returns its index and true. Otherwise it
// returns the slot a new resume with that UUID must be written to, and false.
// Every slot from that index onward is shifted right before the write.
type Indexer interface {
	Name() string
	Locate(occupied []resumes.Resume, uuid string) (index int, found bool)
}

var strategyAliases = map[string]string{
	"":             StrategyLinear,
	StrategyLinear: StrategyLinear,
	"array":        StrategyLinear,
	StrategySorted: StrategySorted,
	"sorted-array": StrategySorted,
	"binary":       StrategySorted,
}

// CanonicalStrategy maps a strategy name or alias to StrategyLinear or
// StrategySorted. Matching ignores case and surrounding spaces.
func CanonicalStrategy(name string) (string, bool) {
	canonical, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}

// IndexerFor resolves a strategy name or alias.
func IndexerFor(name string) (Indexer, error) {
	canonical, ok := CanonicalStrategy(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	if canonical == StrategySorted {
		return Sorted{}, nil
	}
	return Linear{}, nil
}
