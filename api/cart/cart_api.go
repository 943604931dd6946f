package cart

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazar.GO/api"
	cartStore "bazar.GO/cart"
	kvRepo "bazar.GO/model/repository/kv"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// AddItemRequest mirrors the add-to-cart call: a denormalized snapshot of
// the product at add time. Quantity defaults to 1.
type AddItemRequest struct {
	ID       string  `json:"id"`
	NameEn   string  `json:"name_en"`
	NameBn   string  `json:"name_bn"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ModelEn  string  `json:"model_en"`
	ModelBn  string  `json:"model_bn"`
	BrandEn  string  `json:"brand_en"`
	BrandBn  string  `json:"brand_bn"`
}

type cartResponse struct {
	Items  []cartStore.Item `json:"items"`
	Totals cartStore.Totals `json:"totals"`
}

func render(s *cartStore.Store) cartResponse {
	items := s.Items()
	if items == nil {
		items = []cartStore.Item{}
	}
	return cartResponse{Items: items, Totals: s.Totals()}
}

func RegisterCartRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/cart")
	repo := kvRepo.NewKVRepository(deps.DB)

	load := func(c echo.Context) *cartStore.Store {
		return cartStore.Load(repo, "cart:"+api.SessionID(c))
	}

	// GET /api/cart – current cart with derived totals.
	g.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, render(load(c)))
	})

	// POST /api/cart/items – add (merge by id).
	g.POST("/items", func(c echo.Context) error {
		var body AddItemRequest
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.ID == "" || body.NameEn == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "id and name_en are required"})
		}
		s := load(c)
		if err := s.Add(cartStore.AddInput{
			ProductID: body.ID,
			NameEn:    body.NameEn,
			NameBn:    body.NameBn,
			Price:     body.Price,
			Quantity:  body.Quantity,
			ModelEn:   body.ModelEn,
			ModelBn:   body.ModelBn,
			BrandEn:   body.BrandEn,
			BrandBn:   body.BrandBn,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(s))
	})

	// DELETE /api/cart/items/:id – idempotent removal.
	g.DELETE("/items/:id", func(c echo.Context) error {
		s := load(c)
		if err := s.Remove(c.Param("id")); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(s))
	})

	// DELETE /api/cart – empty the cart.
	g.DELETE("", func(c echo.Context) error {
		s := load(c)
		if err := s.Clear(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, render(s))
	})
}
