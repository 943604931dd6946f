package models

// LocalizedText carries both locales plus the string resolved for the
// request locale.
type LocalizedText struct {
	En    string `json:"en" mapstructure:"en"`
	Bn    string `json:"bn" mapstructure:"bn"`
	Value string `json:"value" mapstructure:"-"`
}

type Product struct {
	ID            string         `json:"id" mapstructure:"id"`
	Name          LocalizedText  `json:"name" mapstructure:"name"`
	Price         float64        `json:"price" mapstructure:"price"`
	OriginalPrice *float64       `json:"original_price,omitempty" mapstructure:"original_price"`
	Rating        *float64       `json:"rating,omitempty" mapstructure:"rating"`
	ReviewsCount  *int32         `json:"reviews_count,omitempty" mapstructure:"reviews_count"`
	Brand         *LocalizedText `json:"brand,omitempty" mapstructure:"brand"`
	Model         *LocalizedText `json:"model,omitempty" mapstructure:"model_name"`
	Type          *string        `json:"type,omitempty" mapstructure:"type"`
	SubcategoryID *string        `json:"subcategoryId,omitempty" mapstructure:"-"`
}

type Subcategory struct {
	ID    string        `json:"id"`
	Name  LocalizedText `json:"name"`
	Type  *string       `json:"type,omitempty"`
	Items []*Product    `json:"items"`
}

type Category struct {
	ID            string         `json:"id"`
	Name          LocalizedText  `json:"name"`
	Type          *string        `json:"type,omitempty"`
	Subcategories []*Subcategory `json:"subcategories"`
	Items         []*Product     `json:"items"`
}

type SearchResult struct {
	Categories []*Subcategory `json:"categories"`
	Products   []*Product     `json:"products"`
}
