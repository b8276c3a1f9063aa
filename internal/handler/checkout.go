package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/middleware"
	"shopcart-backend/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if err := req.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.checkoutService.PlaceOrder(ctx, middleware.UserEmail(c), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *CheckoutHandler) GetSupportedBanks(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"banks": []map[string]string{
			{"code": "SBI", "name": "State Bank of India"},
			{"code": "HDFC", "name": "HDFC Bank"},
			{"code": "ICICI", "name": "ICICI Bank"},
			{"code": "AXIS", "name": "Axis Bank"},
			{"code": "KOTAK", "name": "Kotak Mahindra Bank"},
			{"code": "PNB", "name": "Punjab National Bank"},
			{"code": "BOB", "name": "Bank of Baroda"},
			{"code": "CANARA", "name": "Canara Bank"},
			{"code": "UNION", "name": "Union Bank of India"},
			{"code": "IOB", "name": "Indian Overseas Bank"},
		},
	})
}

func (h *CheckoutHandler) GetSupportedUPIApps(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"upi_apps": []map[string]string{
			{"code": "GPAY", "name": "Google Pay"},
			{"code": "PHONEPE", "name": "PhonePe"},
			{"code": "PAYTM", "name": "Paytm"},
			{"code": "BHIM", "name": "BHIM UPI"},
			{"code": "AMAZONPAY", "name": "Amazon Pay"},
			{"code": "CRED", "name": "CRED UPI"},
			{"code": "MOBIKWIK", "name": "MobiKwik"},
		},
	})
}
