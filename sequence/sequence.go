// Package sequence assigns the next integer id for a collection that keeps
// externally visible sequential ids instead of database auto-increment.
package sequence

import "sync"

// Allocator serializes "read max id, insert max+1" behind a single lock so
// two concurrent creates against the same collection can never observe the
// same maximum. One Allocator guards one collection.
type Allocator struct {
	mu sync.Mutex
}

// Next runs maxID and insert under the allocator lock. The insert closure
// receives maxID+1 (or 1 for an empty collection) and must perform any
// uniqueness checks plus the actual insert; keeping those inside the lock is
// what makes check-then-create safe. Expensive work such as password hashing
// belongs before the Next call, outside the lock.
func (a *Allocator) Next(maxID func() (int, error), insert func(id int) error) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	max, err := maxID()
	if err != nil {
		return 0, err
	}
	id := max + 1
	if err := insert(id); err != nil {
		return 0, err
	}
	return id, nil
}
