package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcart-backend/internal/middleware"
	"shopcart-backend/internal/service"
)

type OrdersHandler struct {
	orderQueryService service.OrderQueryService
}

func NewOrdersHandler(orderQueryService service.OrderQueryService) *OrdersHandler {
	return &OrdersHandler{
		orderQueryService: orderQueryService,
	}
}

func (h *OrdersHandler) GetRecentOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderQueryService.RecentOrders(ctx, middleware.UserEmail(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"recent_orders": orders,
	})
}

func (h *OrdersHandler) GetOrderDetail(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderID")
	if orderID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order id")
	}

	order, err := h.orderQueryService.OrderDetail(ctx, middleware.UserEmail(c), orderID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, order)
}
