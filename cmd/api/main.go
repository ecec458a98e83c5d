package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/LuisR-ecu/sas-solution-factory-demo/docs"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/config"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/handler"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/logger"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/model"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/queue/sqs"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/repository/memory"
	"github.com/LuisR-ecu/sas-solution-factory-demo/internal/service"
)

// @title Churn Analytics API
// @version 1.0
// @description API for churn risk scoring, explanations, and segment analytics
// @host localhost:8000
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	metric, err := model.ParseSegmentMetric(cfg.Model.SegmentMetric)
	if err != nil {
		log.Fatal("Invalid segment metric configuration", zap.Error(err))
	}

	// Load the dataset and train the model before accepting any traffic.
	// A training failure is fatal: there is nothing to serve without weights.
	customers := memory.NewRepository(memory.SeedRecords())
	records, err := customers.List(ctx)
	if err != nil {
		log.Fatal("Failed to load dataset", zap.Error(err))
	}

	trained, err := model.Train(records, model.DefaultTrainConfig())
	if err != nil {
		log.Fatal("Failed to train model", zap.Error(err))
	}
	log.Info("Model trained",
		zap.Int("records", len(records)),
		zap.Int("dimensions", len(trained.Schema().Dimensions())))

	// Initialize SQS client for the batch-scoring queue
	sqsClient, err := sqs.NewClient(ctx, cfg.SQS, log)
	if err != nil {
		log.Fatal("Failed to create SQS client", zap.Error(err))
	}

	// Initialize churn service
	churnService := service.NewChurnService(trained, customers, sqsClient, metric, cfg.Model.ExportThreshold, log)

	// Initialize handler
	h := handler.NewHandler(churnService, cfg.Service.CORSOrigin, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
