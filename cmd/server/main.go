package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/foodtrackerapp/expiry-notifier/internal/auth"
	"github.com/foodtrackerapp/expiry-notifier/internal/config"
	"github.com/foodtrackerapp/expiry-notifier/internal/expiry"
	"github.com/foodtrackerapp/expiry-notifier/internal/logger"
	"github.com/foodtrackerapp/expiry-notifier/internal/metrics"
	"github.com/foodtrackerapp/expiry-notifier/internal/push"
	"github.com/foodtrackerapp/expiry-notifier/internal/scheduler"
	"github.com/foodtrackerapp/expiry-notifier/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadConfig()

	log := logger.New(logger.FromConfig(config.AppConfig.LogLevel, config.AppConfig.LogFormat))

	gin.SetMode(config.AppConfig.GinMode)

	ctx := context.Background()

	client, err := store.NewClient(ctx, config.AppConfig.FirebaseProjectID, config.AppConfig.FirebaseCredJSON)
	if err != nil {
		log.Error("failed to initialize firebase client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close()

	// Wire the pipeline.
	st := store.New(
		client.Firestore(),
		log,
		config.AppConfig.ItemCollection,
		config.AppConfig.HouseholdCollection,
		config.AppConfig.TargetCollection,
	)
	dispatcher := push.NewDispatcher(client.Messaging(), log, config.AppConfig.PushEnabled)
	workflow := expiry.NewWorkflow(st, st, st, dispatcher, log)
	handler := expiry.NewHandler(workflow, log)

	apiKey := auth.NewAPIKeyMiddleware(config.AppConfig.APIKey)

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "instance": logger.GetInstanceID()})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/v1")
	v1.Use(apiKey.RequireKey())
	{
		v1.POST("/runs", handler.TriggerRun)
		v1.POST("/runs/naive", handler.TriggerNaiveRun)
	}

	// In-process daily trigger.
	sched := scheduler.New(log)
	if config.AppConfig.CronEnabled {
		err := sched.Add(config.AppConfig.CronSchedule, "daily-expiry-run", func() {
			runCtx := logger.WithRunID(context.Background(), logger.GenerateRunID())
			if _, err := workflow.Run(runCtx); err != nil {
				log.WithContext(runCtx).Error("scheduled run aborted",
					slog.String("error", err.Error()))
			}
		})
		if err != nil {
			log.Error("failed to register daily run", slog.String("error", err.Error()))
			os.Exit(1)
		}
		sched.Start()
	} else {
		log.Warn("cron trigger disabled, runs must be triggered over HTTP")
	}

	port := ":" + config.AppConfig.Port
	log.Info("expiry notifier listening",
		slog.String("port", port),
		slog.String("project", config.AppConfig.FirebaseProjectID),
		slog.String("schedule", config.AppConfig.CronSchedule))

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	// Let an in-flight scheduled run finish before closing clients.
	<-sched.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server exited")
}
