package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrNotLoaded is returned while the catalog document is absent
	// (startup fetch not resolved, or load failed).
	ErrNotLoaded = errors.New("catalog: not loaded")
	// ErrNotFound is returned when an id exists nowhere in the loaded tree.
	ErrNotFound = errors.New("catalog: not found")
)

// Store owns the loaded catalog document and its derived flat index.
// The document is replaced wholesale on reload; the index is rebuilt
// lazily on the first search after a swap.
type Store struct {
	mu  sync.RWMutex
	doc *Document
	idx *Index
}

func NewStore() *Store {
	return &Store{}
}

// LoadFile reads and parses the catalog document from path and swaps it in.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	s.SetDocument(&doc)
	return nil
}

// SetDocument swaps in a new document and invalidates the index.
func (s *Store) SetDocument(doc *Document) {
	s.mu.Lock()
	s.doc = doc
	s.idx = nil
	s.mu.Unlock()
}

// Invalidate drops the derived index; the next Index call rebuilds it.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.idx = nil
	s.mu.Unlock()
}

// Loaded reports whether a document is present.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil
}

// Document returns the current document, or ErrNotLoaded.
func (s *Store) Document() (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, ErrNotLoaded
	}
	return s.doc, nil
}

// Index returns the flat index, building it on first use after a
// document swap. Returns ErrNotLoaded while no document is present.
func (s *Store) Index() (*Index, error) {
	s.mu.RLock()
	idx, doc := s.idx, s.doc
	s.mu.RUnlock()
	if idx != nil {
		return idx, nil
	}
	if doc == nil {
		return nil, ErrNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx == nil && s.doc != nil {
		s.idx = BuildIndex(s.doc.Categories)
	}
	if s.idx == nil {
		return nil, ErrNotLoaded
	}
	return s.idx, nil
}

// Find returns the product with the given id. Items held directly by a
// category are checked before subcategory items, mirroring the order the
// original lookup used. Returns ErrNotLoaded before the catalog is
// available and ErrNotFound for an unknown id; callers that only care
// about presence can treat both as a miss.
func (s *Store) Find(id string) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return Product{}, ErrNotLoaded
	}
	for _, cat := range s.doc.Categories {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, nil
			}
		}
		for _, sub := range cat.Subcategories {
			for _, item := range sub.Items {
				if item.ID == id {
					return item, nil
				}
			}
		}
	}
	return Product{}, ErrNotFound
}

// FindCategory resolves id against top-level categories first, then
// against subcategories. A matched subcategory is returned as a category
// holding the subcategory's items, with the type inherited from its
// parent.
func (s *Store) FindCategory(id string) (Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return Category{}, ErrNotLoaded
	}
	for _, cat := range s.doc.Categories {
		if cat.ID == id {
			return cat, nil
		}
	}
	for _, cat := range s.doc.Categories {
		for _, sub := range cat.Subcategories {
			if sub.ID == id {
				return Category{
					ID:    sub.ID,
					Name:  sub.Name,
					Type:  cat.Type,
					Items: sub.Items,
				}, nil
			}
		}
	}
	return Category{}, ErrNotFound
}
