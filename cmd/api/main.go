package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"shopcart-backend/internal/client"
	"shopcart-backend/internal/config"
	"shopcart-backend/internal/repository"
	"shopcart-backend/internal/server"
	"shopcart-backend/internal/service"
	"shopcart-backend/internal/worker"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	// money fields serialize as bare JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	db := client.InitSqliteClient(cfg.DatabaseURL)

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	cartClearRepo := repository.NewCartClearRepository(db)

	pricingService := service.NewPricingService()
	paymentService := service.NewPaymentService(cfg.Payment, orderRepo, webhookEventRepo)
	checkoutService := service.NewCheckoutService(userRepo, orderRepo, cartClearRepo, pricingService, paymentService)
	cardService := service.NewCardService(userRepo)
	orderQueryService := service.NewOrderQueryService(orderRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(checkoutService, paymentService, cardService, orderQueryService, cfg.JWT.AccessSecret)

	pollerCtx, pollerCancel := context.WithCancel(context.Background())
	poller := worker.NewCartClearPoller(userRepo, cartClearRepo)
	go poller.Run(pollerCtx)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	pollerCancel()

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
