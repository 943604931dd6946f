package order

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bazar.GO/api"
	orderRepo "bazar.GO/model/repository/order"
	orderService "bazar.GO/service/order"
)

func init() {
	api.RegisterRoute(RegisterOrderRoutes)
}

// RegisterOrderRoutes wires POST /send-email on the root instance (the
// endpoint predates the /api group and clients depend on the path).
func RegisterOrderRoutes(e *echo.Echo, deps api.Deps) {
	RegisterOrderRoutesWithService(e, &orderService.Service{
		Sender: senderOrNil(),
		Repo:   orderRepo.NewOrderRepository(deps.DB),
	})
}

// RegisterOrderRoutesWithService wires the endpoint against an explicit
// service, letting tests swap the mail transport.
func RegisterOrderRoutesWithService(e *echo.Echo, svc *orderService.Service) {
	e.POST("/send-email", func(c echo.Context) error {
		var body orderService.Payload
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid order payload."})
		}
		if len(body.Cart) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cart is empty."})
		}
		if err := svc.Submit(body); err != nil {
			c.Logger().Error(err)
			// Cart state is never touched here; the client clears it
			// only on a successful response so the user can retry.
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to place order. Please try again."})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "Order placed successfully!"})
	})
}

// senderOrNil keeps the typed-nil out of the interface field.
func senderOrNil() orderService.Sender {
	if s := orderService.NewSMTPSenderFromEnv(); s != nil {
		return s
	}
	return nil
}
