package main

import (
	"context"
	"log"

	"api-technician/config"
	"api-technician/database"
	"api-technician/geo"
	"api-technician/handler"
	"api-technician/logger"
	"api-technician/middleware"
	"api-technician/router"
	"api-technician/store"
	"api-technician/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer zlog.Sync()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	shutdownTracing := telemetry.Setup("api-technician", zlog)
	defer shutdownTracing(ctx)

	// 1. เลือก store ตาม STORE_DRIVER
	var technicianStore store.TechnicianStore
	var verifier middleware.TokenVerifier

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, db, err := database.InitMongo(ctx, cfg)
		if err != nil {
			zlog.Fatal("Could not connect to MongoDB", zap.Error(err))
		}
		defer client.Disconnect(ctx)
		technicianStore = store.NewMongoStore(db, cfg.Collection, zlog)
	case config.DriverMemory:
		technicianStore = store.NewMemoryStore()
	default:
		firestoreClient, authClient, err := database.InitFirebase(ctx, cfg)
		if err != nil {
			zlog.Fatal("Could not initialize Firebase", zap.Error(err))
		}
		defer firestoreClient.Close()
		technicianStore = store.NewFirestoreStore(firestoreClient, cfg.Collection, zlog)
		if cfg.AuthRequired {
			verifier = authClient
		}
	}
	if cfg.AuthRequired && verifier == nil {
		zlog.Fatal("AUTH_REQUIRED needs the firestore store driver for Firebase Auth")
	}
	zlog.Info("Store is ready", zap.String("driver", cfg.StoreDriver), zap.String("collection", cfg.Collection))

	// 2. สร้าง Handler
	technicianHandler := &handler.TechnicianHandler{
		Store:        technicianStore,
		Logger:       zlog,
		ImageBaseURL: cfg.ImageBaseURL,
	}
	geoHandler := &handler.GeoHandler{
		Geo:    geo.NewClient(cfg.GeoDataURL, zlog),
		Logger: zlog,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	middleware.MustRegisterMetrics(registry)

	// 3. ตั้งค่า Router
	r := router.SetupRouter(technicianHandler, geoHandler, router.Options{
		Logger:   zlog,
		Verifier: verifier,
		Metrics:  registry,
	})

	// 4. รันเซิร์ฟเวอร์
	zlog.Info("Server is running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server stopped", zap.Error(err))
	}
}
