package alphabet

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to alphabets. It replaces any process-wide cache: the
// owner creates one and hands it to the code that resolves alphabet names.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]*Alphabet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Alphabet)}
}

// Register adds a under name. Names are unique.
func (r *Registry) Register(name string, a *Alphabet) error {
	if name == "" {
		return fmt.Errorf("Register: %w", ErrEmptyName)
	}
	if a == nil {
		return fmt.Errorf("Register(%q): %w", name, ErrNilAlphabet)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKey[name]; ok {
		return fmt.Errorf("Register(%q): %w", name, ErrDuplicateAlphabet)
	}
	r.byKey[name] = a

	return nil
}

// Lookup returns the alphabet registered under name.
func (r *Registry) Lookup(name string) (*Alphabet, error) {
	r.mu.RLock()
	a, ok := r.byKey[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrAlphabetNotFound)
	}

	return a, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.byKey))
	for name := range r.byKey {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)

	return out
}

// Len returns the number of registered alphabets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byKey)
}

// Replace swaps the whole content atomically; used when definitions reload.
func (r *Registry) Replace(next map[string]*Alphabet) error {
	fresh := make(map[string]*Alphabet, len(next))
	for name, a := range next {
		if name == "" {
			return fmt.Errorf("Replace: %w", ErrEmptyName)
		}
		if a == nil {
			return fmt.Errorf("Replace(%q): %w", name, ErrNilAlphabet)
		}
		fresh[name] = a
	}

	r.mu.Lock()
	r.byKey = fresh
	r.mu.Unlock()

	return nil
}
