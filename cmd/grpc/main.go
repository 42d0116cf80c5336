package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pb "github.com/fekuna/omnipos-catalog-service/api/catalog/v1"
	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/catalog"
	"github.com/fekuna/omnipos-catalog-service/internal/database/postgres"
	"github.com/fekuna/omnipos-catalog-service/internal/events"
	"github.com/fekuna/omnipos-catalog-service/internal/i18n"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/fekuna/omnipos-catalog-service/internal/middleware"
	"github.com/fekuna/omnipos-catalog-service/internal/product"
	prodRepoPkg "github.com/fekuna/omnipos-catalog-service/internal/product/repository"
	"github.com/fekuna/omnipos-catalog-service/internal/search"
	"github.com/fekuna/omnipos-catalog-service/internal/shopper"
	shopperStore "github.com/fekuna/omnipos-catalog-service/internal/shopper/store"
	sfH "github.com/fekuna/omnipos-catalog-service/internal/storefront/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/storefront/session"
	sfUCPkg "github.com/fekuna/omnipos-catalog-service/internal/storefront/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 2.5 Initialize i18n
	translator, err := i18n.New()
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	// 3. Load Catalog
	var repo product.Repository
	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		repo = prodRepoPkg.NewPGRepository(db)
	case config.SourceSeed:
		seed, err := prodRepoPkg.NewSeedRepository()
		if err != nil {
			appLogger.Fatal("Could not read seed catalog", zap.Error(err))
		}
		repo = seed
	default:
		appLogger.Fatal("Unknown catalog source", zap.String("source", cfg.Catalog.Source))
	}

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	products, err := repo.FindAll(loadCtx)
	cancelLoad()
	if err != nil {
		appLogger.Fatal("Could not load products", zap.Error(err))
	}
	cat, err := catalog.New(products)
	if err != nil {
		appLogger.Fatal("Invalid catalog", zap.Error(err))
	}
	metrics.CatalogSize.Set(float64(cat.Len()))
	appLogger.Info("Catalog loaded", zap.String("source", cfg.Catalog.Source), zap.Int("products", cat.Len()))

	// 4. Initialize Shopper Store
	var store shopper.Store = shopperStore.NewMemoryStore()
	if cfg.Redis.Enabled {
		redisClient, err := shopperStore.NewRedisClient(&shopperStore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		store = shopperStore.NewRedisStore(redisClient)
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Kafka Publisher
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(&events.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			Async:   cfg.Kafka.Async,
		}, appLogger)
		appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	defer publisher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5.5 Sync Elasticsearch
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
			Index:     cfg.Elastic.Index,
		})
		if err != nil {
			appLogger.Warn("Could not create Elasticsearch client", zap.Error(err))
		} else {
			indexer := search.NewIndexer(esClient, cfg.Elastic.Index, appLogger)
			go func() {
				if err := indexer.EnsureIndex(ctx); err != nil {
					appLogger.Warn("Could not prepare search index", zap.Error(err))
					return
				}
				if err := indexer.Sync(ctx, cat.Products()); err != nil {
					appLogger.Warn("Could not sync search index", zap.Error(err))
				}
			}()
		}
	}

	// 6. Initialize Sessions and UseCase
	sessions, err := session.NewRegistry(cat, cfg.Catalog.PageSize, cfg.Catalog.SessionTTL, appLogger)
	if err != nil {
		appLogger.Fatal("Could not create session registry", zap.Error(err))
	}
	go sessions.Run(ctx, cfg.Catalog.SweepInterval)

	ttl := cfg.Catalog.ShopperStateTTL
	sfUC := sfUCPkg.NewStorefrontUseCase(
		sessions,
		shopper.NewRecentViews(store, ttl),
		shopper.NewCarts(store, ttl),
		shopper.NewViews(store, ttl),
		publisher,
		appLogger,
	)

	// 7. Initialize Handlers
	catalogHandler := sfH.NewCatalogHandler(sfUC, translator, appLogger)
	httpHandler := sfH.NewHTTPHandler(catalogHandler, appLogger)

	// 8. Start gRPC Server
	port := normalizePort(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		appLogger.Fatal("failed to listen", zap.String("port", port), zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
	)
	pb.RegisterCatalogServiceServer(grpcServer, catalogHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 9. Start HTTP Server
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:              normalizePort(cfg.Server.HTTPPort),
		Handler:           httpHandler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	appLogger.Info("Starting HTTP server", zap.String("port", httpServer.Addr))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	healthServer.Shutdown()
	cancel()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func normalizePort(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
