package lang

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazar.GO/api"
	"bazar.GO/catalog"
	kvRepo "bazar.GO/model/repository/kv"
)

func init() {
	api.RegisterModule(RegisterLangRoutes)
}

// Persisted locale selection, keyed by session like the cart. Anything
// other than the two supported codes falls back to the default.
func RegisterLangRoutes(apiGroup *echo.Group, deps api.Deps) {
	repo := kvRepo.NewKVRepository(deps.DB)

	apiGroup.GET("/lang", func(c echo.Context) error {
		lang := catalog.DefaultLang
		if v, ok, err := repo.Get("lang:" + api.SessionID(c)); err == nil && ok {
			if v == catalog.LangEN || v == catalog.LangBN {
				lang = v
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"lang": lang})
	})

	apiGroup.PUT("/lang", func(c echo.Context) error {
		var body struct {
			Lang string `json:"lang"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.Lang != catalog.LangEN && body.Lang != catalog.LangBN {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unsupported language"})
		}
		if err := repo.Set("lang:"+api.SessionID(c), body.Lang); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"lang": body.Lang})
	})
}
