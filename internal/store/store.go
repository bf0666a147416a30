// Package store holds the in-memory entity collections backing the admin
// panel. Each store exclusively owns its records, guards them with a mutex
// and hands out copies, so callers never share slices with the store.
package store

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by stores. Services translate these into the
// typed application errors exposed over HTTP.
var (
	ErrNotFound = errors.New("record not found")
	ErrInvalid  = errors.New("invalid input")
)

const dateLayout = "2006-01-02"

func today() string {
	return time.Now().Format(dateLayout)
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// dedupeIDs removes duplicates while preserving first-seen order.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
