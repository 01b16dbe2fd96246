package registry

import (
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/ekisa-team/sdkpath/internal/config"
	"github.com/ekisa-team/sdkpath/sdkpath"
)

// Error definitions for the registry package.
var (
	ErrNotFound = errors.New("sdk not found in registry")
)

// Entry is a named SDK resolved from config.
type Entry struct {
	Name   string
	Source config.SourceType
	Value  string
	Path   sdkpath.SdkPath
}

// Registry stores resolved SDK entries.
type Registry struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Set adds an entry to the registry, replacing any entry with the same name.
func (r *Registry) Set(entry *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.Name] = entry
}

// Get returns the entry with the given name.
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	return entry, ok
}

// List returns all entries sorted by name.
func (r *Registry) List() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return entries
}

// Delete deletes the entry with the given name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
