package graphql

import (
	"context"
	"net/http"

	"bazar.GO/catalog"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyLang contextKey = "lang"

// Locale resolution for the current request.
// Resolved from: Lang header > __lang query param > default.
const (
	HeaderLang     = "Lang"
	QueryParamLang = "__lang"
)

// LangFromContext returns the display locale for the current request.
func LangFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxKeyLang); v != nil {
		if lang, ok := v.(string); ok && lang != "" {
			return lang
		}
	}
	return catalog.DefaultLang
}

// WithLang attaches the display locale to context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, CtxKeyLang, lang)
}

// GetLang extracts the locale from the request, ignoring unsupported codes.
func GetLang(r *http.Request) string {
	if h := r.Header.Get(HeaderLang); h == catalog.LangEN || h == catalog.LangBN {
		return h
	}
	if q := r.URL.Query().Get(QueryParamLang); q == catalog.LangEN || q == catalog.LangBN {
		return q
	}
	return catalog.DefaultLang
}
