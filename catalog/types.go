package catalog

// Supported locale codes.
const (
	LangEN = "en"
	LangBN = "bn"
)

// DefaultLang is used when no stored or requested locale is usable.
const DefaultLang = LangBN

// LocalizedText holds one display string per supported locale. User-visible
// text always carries both locales; an empty locale falls back to the other
// at read time.
type LocalizedText struct {
	En string `json:"en" mapstructure:"en"`
	Bn string `json:"bn" mapstructure:"bn"`
}

// Get returns the text for lang, falling back to the other locale.
func (t LocalizedText) Get(lang string) string {
	if lang == LangEN {
		if t.En != "" {
			return t.En
		}
		return t.Bn
	}
	if t.Bn != "" {
		return t.Bn
	}
	return t.En
}

// IsZero reports whether both locales are empty.
func (t LocalizedText) IsZero() bool {
	return t.En == "" && t.Bn == ""
}

// Product is a sellable item or service. Immutable after catalog load.
type Product struct {
	ID            string         `json:"id" mapstructure:"id"`
	Name          LocalizedText  `json:"name" mapstructure:"name"`
	Price         float64        `json:"price" mapstructure:"price"`
	OriginalPrice *float64       `json:"original_price,omitempty" mapstructure:"original_price"`
	Rating        *float64       `json:"rating,omitempty" mapstructure:"rating"`
	ReviewsCount  *int           `json:"reviews_count,omitempty" mapstructure:"reviews_count"`
	Brand         *LocalizedText `json:"brand,omitempty" mapstructure:"brand"`
	ModelName     *LocalizedText `json:"model_name,omitempty" mapstructure:"model_name"`
	Image         string         `json:"image,omitempty" mapstructure:"image"`
	Type          string         `json:"type,omitempty" mapstructure:"type"`
}

// Product types. A product with no explicit type is a physical good.
const (
	TypeProduct = "product"
	TypeService = "service"
)

// Subcategory groups products under a category. Its items may be empty.
type Subcategory struct {
	ID    string        `json:"id" mapstructure:"id"`
	Name  LocalizedText `json:"name" mapstructure:"name"`
	Items []Product     `json:"items" mapstructure:"items"`
}

// Category is a top-level catalog node. It either holds subcategories or,
// degenerately, items directly.
type Category struct {
	ID            string        `json:"id" mapstructure:"id"`
	Name          LocalizedText `json:"name" mapstructure:"name"`
	Type          string        `json:"type,omitempty" mapstructure:"type"`
	Subcategories []Subcategory `json:"subcategories,omitempty" mapstructure:"subcategories"`
	Items         []Product     `json:"items,omitempty" mapstructure:"items"`
}

// Document is the full catalog payload served by GET /api/data.
type Document struct {
	Categories []Category `json:"categories"`
}
