package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/crisisops/crisis_response_system/internal/audit"
	"github.com/crisisops/crisis_response_system/internal/config"
	v1 "github.com/crisisops/crisis_response_system/internal/handler/http/v1"
	"github.com/crisisops/crisis_response_system/internal/repository"
	"github.com/crisisops/crisis_response_system/internal/service"
	"github.com/crisisops/crisis_response_system/pkg/logger"
	"github.com/crisisops/crisis_response_system/pkg/postgres"
	redisclient "github.com/crisisops/crisis_response_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/crisisops/crisis_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Crisis Response System API
// @version 1.0
// @description Crisis response pipeline: report classification, incident prioritization, resource dispatch and alert broadcasting.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Audit pipeline: activity entries are queued in Redis and delivered
	// to the configured webhook by a background worker.
	auditPublisher := audit.NewRedisPublisher(redisClient)
	auditWorker := audit.NewWorker(redisClient, log, cfg)
	auditWorker.Start(ctx)

	reportRepo := repository.NewReportRepository(dbpool)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	resourceRepo := repository.NewResourceRepository(dbpool)
	deploymentRepo := repository.NewDeploymentRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	activityRepo := repository.NewActivityLogRepository(dbpool)

	activityLogger := service.NewActivityLogger(activityRepo, auditPublisher, log)

	classifier := service.NewClassifierService(reportRepo, incidentRepo, activityLogger, log)
	ranker := service.NewRankerService(incidentRepo, activityLogger, log)
	dispatcher := service.NewDispatcherService(incidentRepo, resourceRepo, deploymentRepo, activityLogger, log)
	broadcaster := service.NewBroadcasterService(incidentRepo, reportRepo, alertRepo, activityLogger, log)

	handler := v1.NewHandler(classifier, ranker, dispatcher, broadcaster, log, cfg)

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
