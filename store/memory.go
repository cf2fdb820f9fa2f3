package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory TreeStore used by tests. Values are held as the
// decoded JSON tree, the same shape the Realtime Database serves.
type MemoryStore struct {
	mu   sync.RWMutex
	root map[string]interface{}
	hub  *Hub
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: make(map[string]interface{}), hub: NewHub()}
}

func (s *MemoryStore) Get(ctx context.Context, path string, v interface{}) error {
	s.mu.RLock()
	node, ok := s.lookup(splitPath(path))
	var raw []byte
	var err error
	if ok {
		raw, err = json.Marshal(node)
	}
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (s *MemoryStore) Set(ctx context.Context, path string, v interface{}) error {
	val, err := toTree(v)
	if err != nil {
		return err
	}

	segs := splitPath(path)
	s.mu.Lock()
	parent := s.ensure(segs[:len(segs)-1])
	parent[segs[len(segs)-1]] = val
	s.mu.Unlock()

	s.hub.Notify(path)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	segs := splitPath(path)
	s.mu.Lock()
	node := s.ensure(segs)
	for k, v := range fields {
		val, err := toTree(v)
		if err != nil {
			s.mu.Unlock()
			return err
		}
		node[k] = val
	}
	s.mu.Unlock()

	s.hub.Notify(path)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	segs := splitPath(path)
	s.mu.Lock()
	parent, ok := s.lookupMap(segs[:len(segs)-1])
	if ok {
		delete(parent, segs[len(segs)-1])
	}
	s.mu.Unlock()

	s.hub.Notify(path)
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, path string, v interface{}) (string, error) {
	key := "-" + strings.ReplaceAll(uuid.New().String(), "-", "")
	if err := s.Set(ctx, path+"/"+key, v); err != nil {
		return "", err
	}
	return key, nil
}

func (s *MemoryStore) Subscribe(path string, fn func()) func() {
	return s.hub.Subscribe(path, fn)
}

// lookup walks the tree; returns the node at segs if present.
func (s *MemoryStore) lookup(segs []string) (interface{}, bool) {
	var node interface{} = s.root
	for _, seg := range segs {
		m, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

func (s *MemoryStore) lookupMap(segs []string) (map[string]interface{}, bool) {
	node, ok := s.lookup(segs)
	if !ok {
		return nil, false
	}
	m, ok := node.(map[string]interface{})
	return m, ok
}

// ensure walks to segs, creating intermediate maps, and returns the node map.
func (s *MemoryStore) ensure(segs []string) map[string]interface{} {
	node := s.root
	for _, seg := range segs {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[seg] = child
		}
		node = child
	}
	return node
}

// toTree converts any value to its decoded-JSON form so that reads come back
// the same way the real database would serve them.
func toTree(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
