package search

import (
	"errors"
	"testing"

	"bazar.GO/catalog"
)

func lt(en, bn string) catalog.LocalizedText {
	return catalog.LocalizedText{En: en, Bn: bn}
}

func testIndex() *catalog.Index {
	categories := []catalog.Category{
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
						{ID: "fan-2", Name: lt("Exhaust", "এগজস্ট"), Price: 1800},
					},
				},
				{
					ID:    "lights",
					Name:  lt("Lights", "লাইট"),
					Items: []catalog.Product{{ID: "light-1", Name: lt("Fancy Lamp", "ফ্যান্সি ল্যাম্প"), Price: 700}},
				},
			},
		},
	}
	return catalog.BuildIndex(categories)
}

func TestMatch_EmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		if _, err := Match(q, testIndex()); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Match(%q) err = %v, want ErrEmptyQuery", q, err)
		}
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	res, err := Match("CEILING", testIndex())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Products) != 1 || res.Products[0].ID != "fan-1" {
		t.Errorf("products = %+v, want [fan-1]", res.Products)
	}
}

func TestMatch_BengaliQuery(t *testing.T) {
	res, err := Match("সিলিং", testIndex())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Products) != 1 || res.Products[0].ID != "fan-1" {
		t.Errorf("products = %+v, want [fan-1]", res.Products)
	}
}

func TestMatch_SubcategoryPullsMembers(t *testing.T) {
	// "fan" matches the Fans subcategory, fan-1 and the fancy lamp by
	// name. fan-2 only matches through its subcategory, so it comes
	// after the name matches, and fan-1 is not repeated.
	res, err := Match("fan", testIndex())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Subcategories) != 1 || res.Subcategories[0].ID != "fans" {
		t.Fatalf("subcategories = %+v, want [fans]", res.Subcategories)
	}
	got := make([]string, 0, len(res.Products))
	for _, p := range res.Products {
		got = append(got, p.ID)
	}
	want := []string{"fan-1", "light-1", "fan-2"}
	if len(got) != len(want) {
		t.Fatalf("products = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("products[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMatch_NoHits(t *testing.T) {
	res, err := Match("zzz", testIndex())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Subcategories) != 0 || len(res.Products) != 0 {
		t.Errorf("want empty result, got %+v", res)
	}
}
