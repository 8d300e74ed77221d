package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardstream/payment-gateway/internal/application/services"
	"github.com/cardstream/payment-gateway/internal/config"
	"github.com/cardstream/payment-gateway/internal/domain/validation"
	"github.com/cardstream/payment-gateway/internal/infrastructure/bank"
	"github.com/cardstream/payment-gateway/internal/infrastructure/memstore"
	"github.com/cardstream/payment-gateway/internal/interfaces/rest"
	"github.com/cardstream/payment-gateway/internal/interfaces/rest/middleware"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting gateway service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	store := memstore.NewPaymentStore()
	bankClient := bank.NewBankClient(cfg.BankClient)

	validator := validation.NewSubmissionValidator(
		validation.NewFieldValidator(cfg.Validation.MinExpiryYear),
		validation.NewExpiryValidator(func() time.Time { return time.Now().UTC() }),
		validation.NewCurrencyValidator(),
	)
	recordCreator := services.NewRecordCreator(uuid.NewString)

	submitService := services.NewSubmitService(validator, bankClient, recordCreator, store)
	queryService := services.NewQueryService(store)

	h := rest.NewHandlers(submitService, queryService, logger)

	handler := http.Handler(h.Routes())
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
