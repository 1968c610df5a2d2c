package catalog

import "sync"

// Store holds the active catalog for its consumers. A reload builds a
// complete replacement before swapping it in, so readers never observe a
// half-populated set of tables.
type Store struct {
	loader *Loader

	mu      sync.RWMutex
	current *Catalog
}

func NewStore(loader *Loader) *Store {
	return &Store{loader: loader}
}

// Current returns the active catalog, or an empty one before the first
// load.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &Catalog{}
	}
	return s.current
}

// Reload runs a full load and swaps in the result.
func (s *Store) Reload() *Catalog {
	c := s.loader.Load()
	s.mu.Lock()
	s.current = c
	s.mu.Unlock()
	return c
}

// SetLanguage switches the active language; the change takes effect on
// the next Reload, which rebuilds every table against the new text
// mappings.
func (s *Store) SetLanguage(id int) error {
	return s.loader.locale.SetLanguage(id)
}

// LanguageName reports the language of the last completed load.
func (s *Store) LanguageName() string {
	return s.loader.locale.LanguageName()
}
