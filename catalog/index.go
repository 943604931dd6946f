package catalog

// IndexedSubcategory is a flat subcategory record. Type is inherited from
// the parent category.
type IndexedSubcategory struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
	Type string        `json:"type,omitempty"`
}

// IndexedProduct is a flat product record tagged with its parent
// subcategory and the type inherited from the top-level category.
type IndexedProduct struct {
	Product
	CategoryName  LocalizedText `json:"categoryName"`
	SubcategoryID string        `json:"subcategoryId"`
	InheritedType string        `json:"type,omitempty"`
}

// Index holds the flat lookup tables derived from the category tree.
// Order mirrors traversal order (category, then subcategory, then product)
// so results are stable across rebuilds.
type Index struct {
	AllProducts      []IndexedProduct
	AllSubcategories []IndexedSubcategory
}

// BuildIndex flattens the category tree. Categories without subcategories
// contribute nothing: items attached directly to a category are reachable
// through Store.Find but are not part of the flat index.
func BuildIndex(categories []Category) *Index {
	idx := &Index{}
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			idx.AllSubcategories = append(idx.AllSubcategories, IndexedSubcategory{
				ID:   sub.ID,
				Name: sub.Name,
				Type: cat.Type,
			})
			for _, item := range sub.Items {
				idx.AllProducts = append(idx.AllProducts, IndexedProduct{
					Product:       item,
					CategoryName:  sub.Name,
					SubcategoryID: sub.ID,
					InheritedType: cat.Type,
				})
			}
		}
	}
	return idx
}
