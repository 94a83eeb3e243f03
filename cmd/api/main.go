package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushq/college-portal-api/api/swagger"
	"github.com/campushq/college-portal-api/internal/handler"
	"github.com/campushq/college-portal-api/internal/middleware"
	"github.com/campushq/college-portal-api/internal/models"
	"github.com/campushq/college-portal-api/internal/repository"
	"github.com/campushq/college-portal-api/internal/service"
	"github.com/campushq/college-portal-api/pkg/cache"
	"github.com/campushq/college-portal-api/pkg/config"
	"github.com/campushq/college-portal-api/pkg/logger"
	corsmiddleware "github.com/campushq/college-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/college-portal-api/pkg/middleware/requestid"
)

// @title College Portal API
// @version 1.0.0
// @description Role-based college management portal
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	store := repository.New()
	if err := repository.Seed(store, repository.SeedParams{
		StudentCount:   cfg.Seed.StudentCount,
		AttendanceDays: cfg.Seed.AttendanceDays,
		RandomSeed:     cfg.Seed.RandomSeed,
		Now:            time.Now(),
	}); err != nil {
		logr.Sugar().Fatalw("seed failed", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo *repository.CacheRepository
	if cfg.Dashboard.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer redisClient.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cacheRepo != nil)

	validate := validator.New()

	authSvc := service.NewAuthService(store, validate, logr, cfg.Session)
	studentSvc := service.NewStudentService(store, logr)
	teacherSvc := service.NewTeacherService(store, validate, cacheSvc, logr)
	adminSvc := service.NewAdminService(store, validate, cacheSvc, logr)
	dashboardSvc := service.NewDashboardService(store, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	reportSvc := service.NewReportService(store, logr)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Session)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc, authSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, teacherSvc, authSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.POST("/auth", authHandler.Dispatch)

	session := api.Group("", middleware.Session(authSvc))
	session.GET("/auth", authHandler.Session)
	session.GET("/dashboard", dashboardHandler.Stats)

	student := session.Group("", middleware.RequireRoles(models.RoleStudent))
	student.GET("/student", studentHandler.Portal)

	teacher := session.Group("", middleware.RequireRoles(models.RoleTeacher))
	teacher.GET("/teacher", teacherHandler.Overview)
	teacher.POST("/teacher", teacherHandler.Dispatch)

	admin := session.Group("", middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/admin", adminHandler.Overview)
	admin.POST("/admin", adminHandler.Dispatch)
	if cfg.Reports.Enabled {
		admin.GET("/admin/reports/students", reportHandler.StudentRoster)
		admin.GET("/admin/reports/attendance/:id", reportHandler.StudentAttendance)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}
