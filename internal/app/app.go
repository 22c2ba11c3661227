package app

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/zap"

	"github.com/project/catalog/config"
	"github.com/project/catalog/db"
	"github.com/project/catalog/internal/controller"
	"github.com/project/catalog/internal/usecase/catalog"
	"github.com/project/catalog/internal/usecase/repository"
)

const (
	serviceName     = "catalog"
	shutDownSeconds = 3
)

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		logger.Error("can not create pgxpool", zap.Error(err))
		return
	}
	defer dbPool.Close()

	if err = db.SetupPostgres(cfg.PG.MigrationURL); err != nil {
		logger.Error("can not migrate database", zap.Error(err))
		return
	}

	tp, err := setupTracing(cfg)
	if err != nil {
		logger.Error("can not set up tracing", zap.Error(err))
		return
	}

	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
		defer shutdownCancel()
		_ = tp.Shutdown(shutdownCtx)
	}()

	var logRepo *zap.Logger
	if cfg.Log.LogDBRepo {
		logRepo = logger
	} else {
		logRepo = nil
	}
	repo := repository.New(logRepo, dbPool)

	var logTransactor *zap.Logger
	if cfg.Log.LogTransactor {
		logTransactor = logger
	} else {
		logTransactor = nil
	}
	transactor := repository.NewTransactor(logTransactor, dbPool)

	var logUseCase *zap.Logger
	if cfg.Log.LogUseCase {
		logUseCase = logger
	} else {
		logUseCase = nil
	}
	useCases := catalog.New(logUseCase, repo, repo, transactor)

	var logController *zap.Logger
	if cfg.Log.LogController {
		logController = logger
	} else {
		logController = nil
	}
	ctrl := controller.New(logController, useCases, useCases)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		controller.RequestID(),
		controller.AccessLog(logController),
		otelgin.Middleware(serviceName),
	)
	ctrl.RegisterRoutes(router)

	go runMetrics(cfg, logger)

	server := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: router,
	}

	go func() {
		logger.Info("http server listening at port", zap.String("port", cfg.HTTP.Port))

		if listenErr := server.ListenAndServe(); listenErr != nil && listenErr != http.ErrServerClosed {
			logger.Error("http server listen error", zap.Error(listenErr))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutDownSeconds*time.Second)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
}

func setupTracing(cfg *config.Config) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Observability.JaegerURL)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)

	return tp, nil
}

func runMetrics(cfg *config.Config, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	metricsPort := ":" + cfg.Observability.MetricsPort
	logger.Info("metrics listening at port", zap.String("port", metricsPort))

	if err := http.ListenAndServe(metricsPort, mux); err != nil {
		logger.Error("metrics listen error", zap.Error(err))
	}
}
