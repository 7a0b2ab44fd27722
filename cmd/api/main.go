package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/mywealth360/finance-service/internal/config"
	"github.com/mywealth360/finance-service/internal/handler"
	"github.com/mywealth360/finance-service/internal/integrations/bcb"
	"github.com/mywealth360/finance-service/internal/middleware"
	"github.com/mywealth360/finance-service/internal/repository"
	"github.com/mywealth360/finance-service/internal/scheduler"
	"github.com/mywealth360/finance-service/internal/service"
	"github.com/mywealth360/finance-service/internal/utils/email"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	sender := email.NewSender(cfg, logger)
	bcbClient := bcb.NewBCBClient(cfg, logger)
	svc := service.NewService(repo, logger, cfg)
	renewals := service.NewRenewalService(repo, logger)
	insightSvc := service.NewInsightService(repo, logger)
	digests := service.NewDigestService(repo, sender, logger)
	summaries := service.NewSummaryService(repo, bcbClient, logger)
	h := handler.NewHandler(svc, renewals, insightSvc, digests, summaries)

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/insights", h.GenerateInsights).Methods("POST")
	authRouter.HandleFunc("/renewal/run", h.RunRenewal).Methods("POST")
	authRouter.HandleFunc("/bills/pay-bulk", h.PayBillsBulk).Methods("POST")
	authRouter.HandleFunc("/bills/{id:[0-9]+}/pay", h.PayBill).Methods("POST")
	authRouter.HandleFunc("/summary", h.Summary).Methods("GET")
	// Admin routes
	adminRouter := r.PathPrefix("/email-queue").Subrouter()
	adminRouter.Use(middleware.AdminMiddleware(cfg))
	adminRouter.HandleFunc("/process", h.ProcessEmailQueue).Methods("POST")
	// BCB exchange rate endpoint
	r.HandleFunc("/exchange-rate", func(w http.ResponseWriter, r *http.Request) {
		rate, err := bcbClient.GetUSDRate()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get exchange rate: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]float64{"usd_brl": rate})
	}).Methods("GET")

	// Start scheduler
	if cfg.SchedulerEnabled {
		sched := scheduler.New(renewals, digests, logger)
		if err := sched.Start(); err != nil {
			logger.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
