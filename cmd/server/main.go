package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/food_delivery/internal/config"
	"github.com/Skotchmaster/food_delivery/internal/es"
	"github.com/Skotchmaster/food_delivery/internal/httpserver"
	"github.com/Skotchmaster/food_delivery/internal/logging"
	"github.com/Skotchmaster/food_delivery/internal/mykafka"
	"github.com/Skotchmaster/food_delivery/internal/repo"
	"github.com/Skotchmaster/food_delivery/internal/service"
	loggingmw "github.com/Skotchmaster/food_delivery/pkg/middleware/logging"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, configuration)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	prod := &mykafka.Producer{}
	if configuration.KAFKA_ADDRESS != "" {
		brokers := []string{configuration.KAFKA_ADDRESS}
		topics := []string{"user_events", "cart_events", "order_events"}
		prod, err = mykafka.NewProducer(brokers, topics)
		if err != nil {
			log.Fatalf("kafka init error: %v", err)
		}
	}

	gormRepo := repo.NewGormRepo(db)

	orderService := &service.OrderService{
		Repo:         gormRepo,
		RequireItems: configuration.ORDER_REQUIRE_ITEMS,
	}
	cartService := &service.CartService{Repo: gormRepo}
	catalogService := &service.CatalogService{Repo: gormRepo}
	authService := &service.AuthService{
		Repo:      gormRepo,
		JWTSecret: []byte(configuration.JWT_SECRET),
	}

	deps := httpserver.Deps{
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderService, Producer: prod},
		CartHandler:    &httpserver.CartHTTP{Svc: cartService, Producer: prod},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogService},
		AuthHandler:    &httpserver.AuthHTTP{Svc: authService, Producer: prod},
		JWTSecret:      []byte(configuration.JWT_SECRET),
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: "menu_items"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.SERVER_PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", configuration.SERVER_PORT)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
