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

	"fulfillment-service/config"
	"fulfillment-service/internal/api"
	"fulfillment-service/internal/broker"
	"fulfillment-service/internal/engine"
	"fulfillment-service/internal/models"
	"fulfillment-service/internal/redisclient"
	"fulfillment-service/internal/seed"
	"fulfillment-service/internal/service"
	"fulfillment-service/internal/shipping"
	"fulfillment-service/internal/util"
	"fulfillment-service/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting fulfillment service")

	tp, err := util.InitTracer("fulfillment-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	var mirror *redisclient.Client
	if cfg.RedisEnabled() {
		mirror, err = redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer mirror.Close()
		log.Println("Redis connected")
	}

	var notifier engine.ShipmentNotifier
	var eventPublisher *broker.EventPublisher
	var kafkaNotifier *shipping.KafkaNotifier

	if cfg.KafkaEnabled() {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicShipment)
		defer producer.Close()
		log.Println("Kafka producer initialized")

		eventPublisher = broker.NewEventPublisher(producer)
		kafkaNotifier = shipping.NewKafkaNotifier(eventPublisher, 256)
		defer kafkaNotifier.Close()
		notifier = kafkaNotifier
	} else {
		notifier = shipping.NewLogNotifier()
		log.Println("Kafka disabled, using log-only shipment notifications")
	}

	eng := engine.New(cfg.Business.MaxPackageWeightG, notifier)

	var catalog []models.Product
	if cfg.Business.CatalogSeedPath != "" {
		catalog, err = seed.FromFile(cfg.Business.CatalogSeedPath)
	} else {
		catalog, err = seed.Default()
	}
	if err != nil {
		log.Fatalf("Failed to load catalog seed: %v", err)
	}
	if err := eng.LoadCatalog(catalog); err != nil {
		log.Fatalf("Failed to initialize catalog: %v", err)
	}
	log.Printf("Catalog loaded: %d products", len(catalog))

	fulfillmentService := service.NewFulfillmentService(eng, eventPublisher, mirror)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var shipmentWorker *worker.ShipmentWorker
	if cfg.KafkaEnabled() {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicShipment, cfg.Kafka.ConsumerGroup)
		shipmentWorker = worker.NewShipmentWorker(consumer)
		go func() {
			if err := shipmentWorker.Start(workerCtx); err != nil {
				log.Printf("Shipment worker error: %v", err)
			}
		}()
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(fulfillmentService)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	if shipmentWorker != nil {
		shipmentWorker.Stop()
	}

	log.Println("Server exited")
}
