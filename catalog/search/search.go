// Package search implements the live-suggestion matcher over the flat
// catalog index. Matching is plain substring containment in either locale;
// there is no scoring.
package search

import (
	"errors"
	"strings"

	"bazar.GO/catalog"
)

// ErrEmptyQuery signals that the normalized query was empty. The UI hides
// the suggestion panel on this instead of rendering "no results".
var ErrEmptyQuery = errors.New("search: empty query")

// Result holds matched subcategories and products, each in index order.
// Products matched by name come before products pulled in through a
// matched subcategory; no product id appears twice.
type Result struct {
	Subcategories []catalog.IndexedSubcategory `json:"categories"`
	Products      []catalog.IndexedProduct     `json:"products"`
}

func matchesText(name catalog.LocalizedText, query string) bool {
	return strings.Contains(strings.ToLower(name.En), query) ||
		strings.Contains(strings.ToLower(name.Bn), query)
}

// Match runs the query against the index. Pure: it never mutates the index
// and is re-invoked on every query change.
func Match(query string, idx *catalog.Index) (Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{}, ErrEmptyQuery
	}

	var res Result
	matchedSubs := make(map[string]bool)
	for _, sub := range idx.AllSubcategories {
		if matchesText(sub.Name, q) {
			res.Subcategories = append(res.Subcategories, sub)
			matchedSubs[sub.ID] = true
		}
	}

	seen := make(map[string]bool)
	for _, p := range idx.AllProducts {
		if matchesText(p.Name, q) {
			res.Products = append(res.Products, p)
			seen[p.ID] = true
		}
	}
	for _, p := range idx.AllProducts {
		if matchedSubs[p.SubcategoryID] && !seen[p.ID] {
			res.Products = append(res.Products, p)
			seen[p.ID] = true
		}
	}
	return res, nil
}
