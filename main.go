// main.go
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

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"go-headphone-store/config"
	"go-headphone-store/controllers"
	"go-headphone-store/middleware"
	"go-headphone-store/routes"
	"go-headphone-store/store"
	"go-headphone-store/utils"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg, err := config.Parse()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, err := utils.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongodb connection error", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongodb disconnect error", zap.Error(err))
		}
	}()

	userStore, err := store.NewMongoUserStore(client, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("user store initialization error", zap.Error(err))
	}
	dataStore := store.NewMongoDataStore(client, cfg.MongoDatabase)

	tokens := utils.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	emailService := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender, logger)
	gate := middleware.NewAuthGate(tokens, userStore)

	// Initialize controllers
	userController := controllers.NewUserController(userStore, tokens, cfg, logger)
	cartController := controllers.NewCartController(userStore, logger)
	checkoutController := controllers.NewCheckoutController(userStore, dataStore, logger)
	invoiceController := controllers.NewInvoiceController(userStore, emailService, logger)
	dataController := controllers.NewDataController(dataStore, logger)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, gate, userController, cartController, checkoutController, invoiceController, dataController)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server is running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown on signal or server error
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		logger.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("application terminated with error", zap.Error(err))
	}
}
