package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront paths (read-only catalog/search, cart session,
	// order submission). Everything else under /api needs credentials.
	return []string{
		"/api/data",
		"/api/search",
		"/api/categories/:id",
		"/api/categories/:id/products/:pid",
		"/api/cart",
		"/api/cart/items",
		"/api/cart/items/:id",
		"/api/lang",
		"/send-email",
		"/graphql",
	}
}
