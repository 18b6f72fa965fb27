package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/expense-ledger/internal"
	"github.com/frahmantamala/expense-ledger/internal/catalog"
	"github.com/frahmantamala/expense-ledger/internal/ledger"
	"github.com/frahmantamala/expense-ledger/internal/storage/csvfile"
	"github.com/frahmantamala/expense-ledger/internal/transport"
	"github.com/frahmantamala/expense-ledger/internal/transport/rest"
	"github.com/frahmantamala/expense-ledger/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server exposing the ledger operations`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	Store  *csvfile.Store
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr, "ledger", deps.Store.Path())

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) {
	baseHandler := transport.NewBaseHandler(deps.Logger)

	ledgerService := ledger.NewService(deps.Store, deps.Logger)
	ledgerHandler := ledger.NewHandler(baseHandler, ledgerService)
	catalogHandler := catalog.NewHandler(baseHandler)

	rest.RegisterAllRoutes(deps.Router, deps.Store, ledgerHandler, catalogHandler, deps.Logger)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format, config.Logging.Level)

	store := csvfile.New(config.Storage.LedgerPath, logger.LoggerWrapper())
	// create the ledger file up front so the first request never pays for it
	if err := store.EnsureExists(); err != nil {
		return nil, fmt.Errorf("failed to initialize ledger store: %w", err)
	}

	return &Dependencies{
		Config: config,
		Store:  store,
		Router: chi.NewRouter(),
		Logger: logger.LoggerWrapper(),
	}, nil
}
