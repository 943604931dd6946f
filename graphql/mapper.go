package graphql

import (
	"reflect"

	"github.com/mitchellh/mapstructure"

	"bazar.GO/catalog"
	gqlmodels "bazar.GO/graphql/models"
)

// localizedTextHook converts catalog text into the GraphQL model,
// resolving the per-request display value as it passes through.
func localizedTextHook(lang string) mapstructure.DecodeHookFunc {
	srcType := reflect.TypeOf(catalog.LocalizedText{})
	dstType := reflect.TypeOf(gqlmodels.LocalizedText{})
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != dstType && (t.Kind() != reflect.Ptr || t.Elem() != dstType) {
			return data, nil
		}
		var lt catalog.LocalizedText
		switch {
		case f == srcType:
			lt = data.(catalog.LocalizedText)
		case f.Kind() == reflect.Ptr && f.Elem() == srcType:
			p := data.(*catalog.LocalizedText)
			if p == nil {
				return data, nil
			}
			lt = *p
		default:
			return data, nil
		}
		return gqlmodels.LocalizedText{En: lt.En, Bn: lt.Bn, Value: lt.Get(lang)}, nil
	}
}

// intToInt32Hook widens catalog counters to the int32 graphql-go expects.
func intToInt32Hook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Int32 {
			return data, nil
		}
		switch v := data.(type) {
		case int:
			return int32(v), nil
		case int64:
			return int32(v), nil
		case float64:
			return int32(v), nil
		}
		return data, nil
	}
}

func decodeProduct(src catalog.Product, lang string) *gqlmodels.Product {
	var out gqlmodels.Product
	cfg := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			localizedTextHook(lang),
			intToInt32Hook(),
		),
		Result:  &out,
		TagName: "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return &gqlmodels.Product{ID: src.ID}
	}
	if err := dec.Decode(src); err != nil {
		return &gqlmodels.Product{ID: src.ID}
	}
	return &out
}

// ToProduct maps a tree product.
func ToProduct(src catalog.Product, lang string) *gqlmodels.Product {
	return decodeProduct(src, lang)
}

// ToIndexedProduct maps a flat index record; the inherited type wins over
// the product's own, matching the index contract.
func ToIndexedProduct(src catalog.IndexedProduct, lang string) *gqlmodels.Product {
	out := decodeProduct(src.Product, lang)
	if src.SubcategoryID != "" {
		sid := src.SubcategoryID
		out.SubcategoryID = &sid
	}
	if src.InheritedType != "" {
		t := src.InheritedType
		out.Type = &t
	}
	return out
}

func toText(src catalog.LocalizedText, lang string) gqlmodels.LocalizedText {
	return gqlmodels.LocalizedText{En: src.En, Bn: src.Bn, Value: src.Get(lang)}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ToSubcategory maps a tree subcategory (no inherited type available).
func ToSubcategory(src catalog.Subcategory, inheritedType, lang string) *gqlmodels.Subcategory {
	out := &gqlmodels.Subcategory{
		ID:    src.ID,
		Name:  toText(src.Name, lang),
		Type:  optionalString(inheritedType),
		Items: make([]*gqlmodels.Product, 0, len(src.Items)),
	}
	for _, item := range src.Items {
		out.Items = append(out.Items, ToProduct(item, lang))
	}
	return out
}

// ToIndexedSubcategory maps a flat index record to the same GraphQL shape,
// without its items (search chips link to the category page instead).
func ToIndexedSubcategory(src catalog.IndexedSubcategory, lang string) *gqlmodels.Subcategory {
	return &gqlmodels.Subcategory{
		ID:    src.ID,
		Name:  toText(src.Name, lang),
		Type:  optionalString(src.Type),
		Items: []*gqlmodels.Product{},
	}
}

// ToCategory maps a top-level category.
func ToCategory(src catalog.Category, lang string) *gqlmodels.Category {
	out := &gqlmodels.Category{
		ID:            src.ID,
		Name:          toText(src.Name, lang),
		Type:          optionalString(src.Type),
		Subcategories: make([]*gqlmodels.Subcategory, 0, len(src.Subcategories)),
		Items:         make([]*gqlmodels.Product, 0, len(src.Items)),
	}
	for _, sub := range src.Subcategories {
		out.Subcategories = append(out.Subcategories, ToSubcategory(sub, src.Type, lang))
	}
	for _, item := range src.Items {
		out.Items = append(out.Items, ToProduct(item, lang))
	}
	return out
}
