package store

import (
	"context"
	"strings"
	"sync"
)

// TreeStore is the hierarchical key-value tree the whole app persists into.
// Paths are slash-separated, e.g. "users/{uid}/anggota/{recordId}".
type TreeStore interface {
	// Get reads the subtree at path into v. A missing path leaves v untouched.
	Get(ctx context.Context, path string, v interface{}) error
	// Set overwrites the subtree at path with v.
	Set(ctx context.Context, path string, v interface{}) error
	// Update merges fields into the node at path without touching siblings.
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	// Delete removes the subtree at path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error
	// Push stores v under a generated child key of path and returns that key.
	Push(ctx context.Context, path string, v interface{}) (string, error)
	// Subscribe registers fn to run after every successful write touching the
	// subtree at path. The returned function releases the subscription; callers
	// must invoke it when the watching view goes away.
	Subscribe(path string, fn func()) (unsubscribe func())
}

// Hub fans out change notifications to path subscribers.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]subscription
}

type subscription struct {
	path string
	fn   func()
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]subscription)}
}

func (h *Hub) Subscribe(path string, fn func()) func() {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = subscription{path: strings.Trim(path, "/"), fn: fn}
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Notify runs the callbacks of every subscriber whose path overlaps the
// written path. Callbacks run outside the lock.
func (h *Hub) Notify(path string) {
	path = strings.Trim(path, "/")

	h.mu.Lock()
	var fns []func()
	for _, s := range h.subs {
		if overlaps(s.path, path) {
			fns = append(fns, s.fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// overlaps reports whether a write at one path is visible from a subscription
// at the other, i.e. one path is an ancestor of (or equal to) the other.
func overlaps(a, b string) bool {
	if a == "" || b == "" {
		return true
	}
	return a == b ||
		strings.HasPrefix(a, b+"/") ||
		strings.HasPrefix(b, a+"/")
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
