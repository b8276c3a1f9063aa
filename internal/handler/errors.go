package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopcart-backend/internal/repository"
	"shopcart-backend/internal/service"
)

// toHTTPError maps service/repository errors onto HTTP statuses. Client
// errors carry their message; everything else is logged and masked.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidDeliveryOption),
		errors.Is(err, service.ErrPriceMismatch),
		errors.Is(err, service.ErrInvalidPaymentCard),
		errors.Is(err, service.ErrUnsupportedPaymentMethod),
		errors.Is(err, service.ErrInvalidPaymentData),
		errors.Is(err, service.ErrPaymentVerification):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidSignature):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			"Internal server error. Please try again later.")
	}
}
