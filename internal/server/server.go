package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopcart-backend/internal/handler"
	"shopcart-backend/internal/middleware"
	"shopcart-backend/internal/service"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
	ordersHandler   *handler.OrdersHandler
	accessSecret    string
}

func NewServer(
	checkoutService service.CheckoutService,
	paymentService service.PaymentService,
	cardService service.CardService,
	orderQueryService service.OrderQueryService,
	accessSecret string,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		paymentHandler:  handler.NewPaymentHandler(paymentService, cardService),
		ordersHandler:   handler.NewOrdersHandler(orderQueryService),
		accessSecret:    accessSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	auth := middleware.AuthMiddleware(s.accessSecret)

	// -------- checkout --------
	checkout := api.Group("/v1/checkout")
	checkout.POST("", s.checkoutHandler.PlaceOrder, auth)
	checkout.GET("/payment-methods/banks", s.checkoutHandler.GetSupportedBanks)
	checkout.GET("/payment-methods/upi-apps", s.checkoutHandler.GetSupportedUPIApps)

	// -------- payments / saved cards --------
	payments := api.Group("/v1/payments")
	payments.POST("/verify", s.paymentHandler.VerifyPayment, auth)
	payments.POST("/webhook", s.paymentHandler.PaymentWebhook) // signed, no bearer token
	payments.POST("/cards/add", s.paymentHandler.AddCard, auth)
	payments.POST("/cards/remove", s.paymentHandler.RemoveCard, auth)
	payments.GET("/cards", s.paymentHandler.ListCards, auth)
	payments.POST("/cards/set-default", s.paymentHandler.SetDefaultCard, auth)

	// -------- order history --------
	orders := api.Group("/v1/orders", auth)
	orders.GET("/recent", s.ordersHandler.GetRecentOrders)
	orders.GET("/:orderID", s.ordersHandler.GetOrderDetail)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
