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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	c "github.com/evgear/store-backend/internal/cache"
	h "github.com/evgear/store-backend/internal/http"
	"github.com/evgear/store-backend/internal/repository"
	s "github.com/evgear/store-backend/internal/service"
	"github.com/evgear/store-backend/pkg/metrics"
)

type Config struct {
	HTTPPort            string
	MongoURI            string
	MongoDBName         string
	MongoConnectTimeout time.Duration
	MongoSelectTimeout  time.Duration
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	RedisAddr           string
	RedisPassword       string
	RequestTimeout      time.Duration
	ShutdownTimeout     time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8000"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:         getEnv("MONGO_DB_NAME", "evstore"),
		MongoConnectTimeout: 10 * time.Second,
		MongoSelectTimeout:  5 * time.Second,
		MongoMaxPoolSize:    100,
		MongoMinPoolSize:    10,
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RequestTimeout:      30 * time.Second,
		ShutdownTimeout:     10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, repository.ConnectConfig{
		URI:              cfg.MongoURI,
		Database:         cfg.MongoDBName,
		ConnectTimeout:   cfg.MongoConnectTimeout,
		SelectionTimeout: cfg.MongoSelectTimeout,
		MaxPoolSize:      cfg.MongoMaxPoolSize,
		MinPoolSize:      cfg.MongoMinPoolSize,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", cfg.MongoURI)

	productRepo := repository.NewMongoProductRepository(mongoDB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	productCache := c.NewRedisCache(redisClient)
	catalog := s.NewCatalogService(productRepo, productCache)
	checkout := s.NewCheckoutService(productRepo, orderRepo)

	m := metrics.NewServerMetrics("store")
	productHandler := h.NewProductHandler(catalog, cfg.RequestTimeout)
	checkoutHandler := h.NewCheckoutHandler(checkout, cfg.RequestTimeout)
	statusHandler := h.NewStatusHandler(mongoDB, redisClient)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", h.Banner)
	r.Get("/health", statusHandler.Get)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/products", m.Instrument("list_products", productHandler.Get))
	r.Post("/seed", m.Instrument("seed", productHandler.Seed))
	r.Post("/checkout", m.Instrument("checkout", checkoutHandler.Checkout))

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "store-backend"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Store backend starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	if err := mongoDB.Client().Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}
	log.Println("server exited")
}
