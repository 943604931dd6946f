package graphqltest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	graphqlApi "bazar.GO/api/graphql"
	"bazar.GO/catalog"
	"bazar.GO/graphqlserver"
)

func lt(en, bn string) catalog.LocalizedText {
	return catalog.LocalizedText{En: en, Bn: bn}
}

func testStore() *catalog.Store {
	s := catalog.NewStore()
	s.SetDocument(&catalog.Document{Categories: []catalog.Category{
		{
			ID:   "electronics",
			Name: lt("Electronics", "ইলেকট্রনিক্স"),
			Type: catalog.TypeProduct,
			Subcategories: []catalog.Subcategory{
				{
					ID:   "fans",
					Name: lt("Fans", "ফ্যান"),
					Items: []catalog.Product{
						{ID: "fan-1", Name: lt("Ceiling Fan", "সিলিং ফ্যান"), Price: 2500},
					},
				},
			},
		},
	}})
	return s
}

type gqlResponse struct {
	Data   map[string]interface{}
	Errors []struct{ Message string }
}

func runQuery(t *testing.T, store *catalog.Store, query, lang string) gqlResponse {
	t.Helper()
	e := echo.New()
	schema, err := graphqlserver.NewSchema(store)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)

	bodyBytes, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if lang != "" {
		req.Header.Set("Lang", lang)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp gqlResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestQuery_Categories(t *testing.T) {
	resp := runQuery(t, testStore(), `{ categories { id name { en bn value } subcategories { id } } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	cats := resp.Data["categories"].([]interface{})
	if len(cats) != 1 {
		t.Fatalf("categories = %d, want 1", len(cats))
	}
	cat := cats[0].(map[string]interface{})
	if cat["id"] != "electronics" {
		t.Errorf("id = %v", cat["id"])
	}
	name := cat["name"].(map[string]interface{})
	if name["value"] != "ইলেকট্রনিক্স" {
		t.Errorf("value = %v, want the bengali default", name["value"])
	}
}

func TestQuery_CategoryValueFollowsLangHeader(t *testing.T) {
	resp := runQuery(t, testStore(), `{ category(id: "fans") { id type name { value } items { id } } }`, "en")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	cat := resp.Data["category"].(map[string]interface{})
	if cat["type"] != "product" {
		t.Errorf("type = %v, want inherited product", cat["type"])
	}
	if cat["name"].(map[string]interface{})["value"] != "Fans" {
		t.Errorf("value = %v, want english form", cat["name"])
	}
	if len(cat["items"].([]interface{})) != 1 {
		t.Error("subcategory items missing")
	}
}

func TestQuery_CategoryMissing(t *testing.T) {
	resp := runQuery(t, testStore(), `{ category(id: "nope") { id } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data["category"] != nil {
		t.Errorf("category = %v, want null", resp.Data["category"])
	}
}

func TestQuery_Product(t *testing.T) {
	resp := runQuery(t, testStore(), `{ product(id: "fan-1") { id price name { value } } }`, "en")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	p := resp.Data["product"].(map[string]interface{})
	if p["price"].(float64) != 2500 {
		t.Errorf("price = %v", p["price"])
	}
	if p["name"].(map[string]interface{})["value"] != "Ceiling Fan" {
		t.Errorf("name = %v", p["name"])
	}
}

func TestQuery_Search(t *testing.T) {
	resp := runQuery(t, testStore(), `{ search(query: "fan") { categories { id } products { id subcategoryId } } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	res := resp.Data["search"].(map[string]interface{})
	cats := res["categories"].([]interface{})
	if len(cats) != 1 || cats[0].(map[string]interface{})["id"] != "fans" {
		t.Errorf("categories = %v", cats)
	}
	products := res["products"].([]interface{})
	if len(products) != 1 {
		t.Fatalf("products = %v", products)
	}
	if products[0].(map[string]interface{})["subcategoryId"] != "fans" {
		t.Errorf("subcategoryId = %v", products[0])
	}
}

func TestQuery_SearchEmptyQuery(t *testing.T) {
	resp := runQuery(t, testStore(), `{ search(query: "") { categories { id } products { id } } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	res := resp.Data["search"].(map[string]interface{})
	if len(res["categories"].([]interface{})) != 0 || len(res["products"].([]interface{})) != 0 {
		t.Errorf("want empty result, got %v", res)
	}
}

func TestQuery_CatalogNotLoaded(t *testing.T) {
	resp := runQuery(t, catalog.NewStore(), `{ categories { id } product(id: "fan-1") { id } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if len(resp.Data["categories"].([]interface{})) != 0 {
		t.Error("categories should be empty while catalog absent")
	}
	if resp.Data["product"] != nil {
		t.Error("product should be null while catalog absent")
	}
}
