package graphqlserver

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"bazar.GO/catalog"
	catalogSearch "bazar.GO/catalog/search"
	"bazar.GO/graphql"
	gqlmodels "bazar.GO/graphql/models"
)

// RootResolver is the root for graphql-go. All queries read the catalog
// store; an absent catalog degrades to empty results, never an error.
type RootResolver struct {
	Catalog *catalog.Store
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{store: r.Catalog}
}

// QueryResolver implements Query fields.
type QueryResolver struct {
	store *catalog.Store
}

func (r *QueryResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	lang := graphql.LangFromContext(ctx)
	doc, err := r.store.Document()
	if err != nil {
		return []*gqlmodels.Category{}, nil
	}
	out := make([]*gqlmodels.Category, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		out = append(out, graphql.ToCategory(cat, lang))
	}
	return out, nil
}

// CategoryArgs matches the category query arguments.
type CategoryArgs struct {
	ID string
}

func (r *QueryResolver) Category(ctx context.Context, args CategoryArgs) (*gqlmodels.Category, error) {
	cat, err := r.store.FindCategory(args.ID)
	if err != nil {
		return nil, nil
	}
	return graphql.ToCategory(cat, graphql.LangFromContext(ctx)), nil
}

// ProductArgs matches the product query arguments.
type ProductArgs struct {
	ID string
}

func (r *QueryResolver) Product(ctx context.Context, args ProductArgs) (*gqlmodels.Product, error) {
	p, err := r.store.Find(args.ID)
	if err != nil {
		return nil, nil
	}
	return graphql.ToProduct(p, graphql.LangFromContext(ctx)), nil
}

// SearchArgs matches the search query arguments.
type SearchArgs struct {
	Query string
}

func (r *QueryResolver) Search(ctx context.Context, args SearchArgs) (*gqlmodels.SearchResult, error) {
	lang := graphql.LangFromContext(ctx)
	empty := &gqlmodels.SearchResult{
		Categories: []*gqlmodels.Subcategory{},
		Products:   []*gqlmodels.Product{},
	}
	idx, err := r.store.Index()
	if err != nil {
		return empty, nil
	}
	res, err := catalogSearch.Match(args.Query, idx)
	if err != nil {
		return empty, nil
	}
	out := &gqlmodels.SearchResult{
		Categories: make([]*gqlmodels.Subcategory, 0, len(res.Subcategories)),
		Products:   make([]*gqlmodels.Product, 0, len(res.Products)),
	}
	for _, sub := range res.Subcategories {
		out.Categories = append(out.Categories, graphql.ToIndexedSubcategory(sub, lang))
	}
	for _, p := range res.Products {
		out.Products = append(out.Products, graphql.ToIndexedProduct(p, lang))
	}
	return out, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(store *catalog.Store) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Catalog: store}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
