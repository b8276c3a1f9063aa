package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcart-backend/internal/dto"
	"shopcart-backend/internal/middleware"
	"shopcart-backend/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	cardService    service.CardService
}

func NewPaymentHandler(paymentService service.PaymentService, cardService service.CardService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		cardService:    cardService,
	}
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.OrderID == "" || req.PaymentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order_id and payment_id are required")
	}

	result, err := h.paymentService.Verify(ctx, &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) PaymentWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	signature := c.Request().Header.Get("X-Webhook-Signature")
	if err := h.paymentService.HandleWebhook(ctx, signature, body); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *PaymentHandler) AddCard(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	card, err := h.cardService.AddCard(ctx, middleware.UserEmail(c), &req)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Card added",
		"card":    card,
	})
}

func (h *PaymentHandler) RemoveCard(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RemoveCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cardService.RemoveCard(ctx, middleware.UserEmail(c), req.CardID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Card removed",
	})
}

func (h *PaymentHandler) ListCards(c echo.Context) error {
	ctx := c.Request().Context()

	cards, err := h.cardService.ListCards(ctx, middleware.UserEmail(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cards": cards,
	})
}

func (h *PaymentHandler) SetDefaultCard(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.DefaultCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.cardService.SetDefaultCard(ctx, middleware.UserEmail(c), req.CardID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Default card set",
	})
}
