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

	"github.com/go-chi/chi/v5"

	"github.com/scamradar/scamradar/internal/application"
	appai "github.com/scamradar/scamradar/internal/application/ai"
	appscans "github.com/scamradar/scamradar/internal/application/scans"
	"github.com/scamradar/scamradar/internal/config"
	domscans "github.com/scamradar/scamradar/internal/domain/scans"
	openaiclient "github.com/scamradar/scamradar/internal/infra/ai/openai"
	mysqlp "github.com/scamradar/scamradar/internal/infra/db/mysql"
	postgresp "github.com/scamradar/scamradar/internal/infra/db/postgres"
	"github.com/scamradar/scamradar/internal/infra/httpserver"
	"github.com/scamradar/scamradar/internal/infra/jsonstore"
	"github.com/scamradar/scamradar/internal/infra/model"
	minioStore "github.com/scamradar/scamradar/internal/infra/storage"
	"github.com/scamradar/scamradar/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// load model artifacts — tanpa model jalan pun percuma, fail fast
	scorer, err := model.Load(cfg.Model.ModelPath, cfg.Model.VectorizerPath)
	if err != nil {
		log.Fatalf("model load error: %v (run the training pipeline first)", err)
	}
	log.Printf("model & vectorizer loaded from %s, %s", cfg.Model.ModelPath, cfg.Model.VectorizerPath)

	// init repo sesuai store driver
	var (
		repo    domscans.Repository
		healthC = map[string]middleware.HealthChecker{}
	)
	switch cfg.Store.Driver {
	case "file", "":
		repo = jsonstore.New(cfg.Store.Path)
		healthC["store"] = &middleware.StoreFileHealthChecker{Path: cfg.Store.Path}
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqlp.NewScanRepository(db)
		healthC["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresp.NewScanRepository(db)
		healthC["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		log.Fatalf("unknown store driver: %s", cfg.Store.Driver)
	}

	// init service
	svc := &appscans.Service{
		Repo:        repo,
		Scorer:      scorer,
		Clock:       application.SystemClock{},
		RecentLimit: cfg.Dashboard.RecentLimit,
	}

	// init minio kalau dikonfigurasi (untuk export history)
	if cfg.ArchiveEnabled() {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		svc.Archive = store
	}

	// init AI explain kalau ada API key
	var aiSvc *appai.Service
	if cfg.AIEnabled() {
		aiSvc = appai.NewService(openaiclient.NewClient(cfg.AI.APIKey, cfg.AI.Model))
	}

	// init router
	mux := chi.NewRouter()
	mux.Use(middleware.RateLimitMiddleware(30, 5))
	mux.Mount("/", httpserver.NewRouter(svc, aiSvc, cfg.Server.AdminKey, middleware.HealthHandler(healthC)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
