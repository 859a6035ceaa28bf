package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appingest "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/ingest"
	reportapp "github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/application/report"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/cache"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/config"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/logger"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/persistence"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/sheet"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/infrastructure/telemetry"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/handler"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/middleware"
	"github.com/Alirezahamed1367/GTLand-GiftCard-sub001/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting gift card ledger",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), &cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Batch processing locks live in Redis so only one worker runs a batch
	// at a time across instances. Without Redis, an in-process lock still
	// protects a single-instance deployment.
	var batchLock appingest.BatchLock
	redisLock, err := cache.NewRedisBatchLock(&cfg.Redis, cfg.Import.LockTTL)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-process batch locks", zap.Error(err))
		batchLock = cache.NewInMemoryBatchLock(cfg.Import.LockTTL)
	} else {
		defer func() {
			if err := redisLock.Close(); err != nil {
				log.Error("Error closing Redis connection", zap.Error(err))
			}
		}()
		batchLock = redisLock
		log.Info("Redis connected")
	}

	batchRepo := persistence.NewGormBatchRepository(db.DB)
	rowRepo := persistence.NewGormRowRepository(db.DB)
	seqRepo := persistence.NewGormSequenceRepository(db.DB)
	mappingRepo := persistence.NewGormMappingRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	lotRepo := persistence.NewGormPurchaseLotRepository(db.DB)
	bonusRepo := persistence.NewGormBonusRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	discrepancyRepo := persistence.NewGormDiscrepancyRepository(db.DB)

	batchService := appingest.NewBatchService(batchRepo, rowRepo, seqRepo, log)
	mappingService := appingest.NewMappingService(mappingRepo, batchRepo, log)
	processorService := appingest.NewProcessorService(
		batchRepo,
		mappingRepo,
		persistence.NewGormTransactionScope(db.DB),
		batchLock,
		log,
	)
	summaryService := reportapp.NewSummaryService(accountRepo, lotRepo, bonusRepo, saleRepo, log)
	discrepancyService := reportapp.NewDiscrepancyService(summaryService, discrepancyRepo, log)

	csvReader := sheet.NewReader(cfg.Import.MaxRows)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewBatchHandler(batchService, mappingService, processorService, csvReader))
	r.Register(handler.NewReportHandler(summaryService, discrepancyService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
