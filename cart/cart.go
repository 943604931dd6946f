// Package cart implements the persisted shopping cart: an ordered list of
// line items unique by product id, mirrored to key-value storage as JSON
// after every mutation.
package cart

import (
	"encoding/json"

	"bazar.GO/catalog"
)

// Storage is the key-value persistence the cart mirrors into. The sqlite
// KV repository implements it in production; tests use an in-memory map.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Item is a cart line. It references a product by id but stores a
// snapshot of name/price/model/brand taken at first add; later catalog
// changes do not propagate.
type Item struct {
	ID       string                 `json:"id"`
	Name     catalog.LocalizedText  `json:"name"`
	Price    float64                `json:"price"`
	Quantity int                    `json:"quantity"`
	Model    *catalog.LocalizedText `json:"model,omitempty"`
	Brand    *catalog.LocalizedText `json:"brand,omitempty"`
}

// Totals are derived values, always recomputed from the items.
type Totals struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Store holds one cart bound to a storage key. Construct with Load; every
// mutation persists the full item list synchronously.
type Store struct {
	storage Storage
	key     string
	items   []Item
}

// Load builds a Store from the persisted value under key. A missing,
// unreadable or malformed value yields an empty cart, never an error:
// corrupt storage must not take the storefront down.
func Load(storage Storage, key string) *Store {
	s := &Store{storage: storage, key: key}
	raw, ok, err := storage.Get(key)
	if err != nil || !ok {
		return s
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return s
	}
	for _, it := range items {
		if it.Quantity < 1 {
			continue
		}
		s.items = append(s.items, it)
	}
	return s
}

func (s *Store) persist() error {
	items := s.items
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.storage.Set(s.key, string(data))
}

// AddInput carries the denormalized product snapshot for Add. Model and
// brand variants may be empty; they are stored only when at least one
// locale is present, with each locale falling back to the other.
type AddInput struct {
	ProductID string
	NameEn    string
	NameBn    string
	Price     float64
	Quantity  int
	ModelEn   string
	ModelBn   string
	BrandEn   string
	BrandBn   string
}

func optionalText(en, bn string) *catalog.LocalizedText {
	if en == "" && bn == "" {
		return nil
	}
	if en == "" {
		en = bn
	}
	if bn == "" {
		bn = en
	}
	return &catalog.LocalizedText{En: en, Bn: bn}
}

// Add merges by product id: an existing line only gains quantity, keeping
// the snapshot from its first add even when the arguments differ. A new
// line is appended otherwise. Persists before returning.
func (s *Store) Add(in AddInput) error {
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	for i := range s.items {
		if s.items[i].ID == in.ProductID {
			s.items[i].Quantity += qty
			return s.persist()
		}
	}
	nameBn := in.NameBn
	if nameBn == "" {
		nameBn = in.NameEn
	}
	s.items = append(s.items, Item{
		ID:       in.ProductID,
		Name:     catalog.LocalizedText{En: in.NameEn, Bn: nameBn},
		Price:    in.Price,
		Quantity: qty,
		Model:    optionalText(in.ModelEn, in.ModelBn),
		Brand:    optionalText(in.BrandEn, in.BrandBn),
	})
	return s.persist()
}

// Remove drops every line with the given id (ids are unique, so at most
// one). Removing an absent id is a no-op, not an error.
func (s *Store) Remove(productID string) error {
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	return s.persist()
}

// Clear empties the cart, used after a successful order submission.
func (s *Store) Clear() error {
	s.items = nil
	return s.persist()
}

// Totals recomputes count and total from the current items.
func (s *Store) Totals() Totals {
	var t Totals
	for _, it := range s.items {
		t.Count += it.Quantity
		t.Total += it.Price * float64(it.Quantity)
	}
	return t
}

// Items returns a copy, so callers can mutate the cart while iterating a
// render pass over the snapshot.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}
