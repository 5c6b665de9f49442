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

	"aerocastle-backend/internal/client"
	"aerocastle-backend/internal/config"
	"aerocastle-backend/internal/notify"
	"aerocastle-backend/internal/repository"
	"aerocastle-backend/internal/server"
	"aerocastle-backend/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
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

	db, err := client.InitDBClient(cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		log.Fatal("database init: ", err)
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.AMQP.URL != "" {
		amqpClient, err := client.InitAMQPClient(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal("rabbitmq init: ", err)
		}
		defer amqpClient.Close()
		notifier = notify.NewAMQPNotifier(amqpClient.Channel, cfg.AMQP.Exchange)
	} else {
		log.Println("AMQP_URL not set, notifications disabled")
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	orderService := service.NewOrderService(db, orderRepo, productRepo, userRepo)
	paymentService := service.NewPaymentService(db, paymentRepo, orderRepo, notifier)
	catalogService := service.NewCatalogService(productRepo, brandRepo, categoryRepo, supplierRepo)
	authService := service.NewAuthService(userRepo, notifier, cfg.JWTSecret)
	userService := service.NewUserService(userRepo)
	engagementService := service.NewEngagementService(reviewRepo, wishlistRepo, userRepo, productRepo)

	srv := server.NewServer(
		orderService,
		paymentService,
		catalogService,
		authService,
		userService,
		engagementService,
		cfg.JWTSecret,
		cfg.UploadDir,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
