package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tutorhive/admin-gateway/api/swagger"
	"github.com/tutorhive/admin-gateway/internal/handler"
	"github.com/tutorhive/admin-gateway/internal/middleware"
	"github.com/tutorhive/admin-gateway/internal/service"
	"github.com/tutorhive/admin-gateway/internal/upstream"
	"github.com/tutorhive/admin-gateway/pkg/config"
	"github.com/tutorhive/admin-gateway/pkg/logger"
	corsmiddleware "github.com/tutorhive/admin-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/tutorhive/admin-gateway/pkg/middleware/requestid"
)

// @title Tutor Admin Gateway
// @version 1.0.0
// @description Calendar view computation and holiday management gateway for the tutoring admin panel
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

	client := upstream.New(cfg.Upstream, logr)
	validate := validator.New()

	metricsSvc := service.NewMetricsService()
	calendarSvc := service.NewCalendarService(client, client, metricsSvc, logr, cfg.Upstream.SessionPageLimit)
	holidaySvc := service.NewHolidayService(client, validate, metricsSvc, logr)
	directorySvc := service.NewDirectoryService(client, metricsSvc, logr)
	exportSvc := service.NewExportService(calendarSvc, logr)

	calendarHandler := handler.NewCalendarHandler(calendarSvc, cfg.Calendar.DefaultView)
	holidayHandler := handler.NewHolidayHandler(holidaySvc)
	directoryHandler := handler.NewDirectoryHandler(directorySvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, client)

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

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(cfg.JWT.Secret))
	{
		api.GET("/calendar", calendarHandler.View)
		api.GET("/calendar/day-sessions", calendarHandler.DaySessions)
		if cfg.Export.Enabled {
			api.GET("/calendar/export", exportHandler.Agenda)
		}

		api.POST("/public-holidays", holidayHandler.Create)
		api.PATCH("/public-holidays/:id", holidayHandler.Update)
		api.DELETE("/public-holidays/:id", holidayHandler.Delete)

		api.GET("/subjects", directoryHandler.Subjects)
		api.GET("/teachers", directoryHandler.Teachers)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
