package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/cimillas/park-operations/internal/app"
	"github.com/cimillas/park-operations/internal/clock"
	"github.com/cimillas/park-operations/internal/storage/flatfile"
	"github.com/cimillas/park-operations/internal/storage/memory"
	"github.com/cimillas/park-operations/internal/storage/postgres"
	transporthttp "github.com/cimillas/park-operations/internal/transport/http"
	"github.com/cimillas/park-operations/migrations"
)

const defaultPort = "8080"
const defaultCORSOrigins = "http://localhost:5173,http://127.0.0.1:5173"
const shutdownTimeout = 10 * time.Second

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Warn(".env not loaded")
	}

	port := os.Getenv("PORT")
	if port == "" {
		logger.Warnf("PORT not set, using default %s", defaultPort)
		port = defaultPort
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		logger.Warn("CORS_ORIGINS not set, using default local origins")
		corsEnv = defaultCORSOrigins
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sysClock := clock.NewSystem()

	var (
		catalogue app.CatalogueRepository
		store     app.AssignmentStore
	)

	// DATABASE_URL selects the durable backend; without it the service runs
	// on the in-memory catalogue, optionally seeded from DATA_DIR files.
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		pool, err := pgxpool.New(startupCtx, dbURL)
		if err != nil {
			logger.WithError(err).Fatal("connect to db")
		}
		defer pool.Close()

		if err := pool.Ping(startupCtx); err != nil {
			logger.WithError(err).Fatal("db ping")
		}
		if err := migrations.Apply(startupCtx, pool); err != nil {
			logger.WithError(err).Fatal("apply migrations")
		}

		catalogue = postgres.NewCatalogue(pool)
		store = postgres.NewAssignmentStore(pool)
		logger.Info("using postgres storage")
	} else {
		memCatalogue := memory.NewCatalogue()
		if dataDir := os.Getenv("DATA_DIR"); dataDir != "" {
			if err := seedFromFiles(startupCtx, memCatalogue, dataDir); err != nil {
				logger.WithError(err).Fatal("seed catalogue")
			}
			logger.WithField("dir", dataDir).Info("catalogue seeded from flat files")
		}
		catalogue = memCatalogue
		store = memory.NewAssignmentStore()
		logger.Warn("DATABASE_URL not set, using in-memory storage")
	}

	staffingSvc := app.NewStaffingService(catalogue, store)
	adminSvc := app.NewAdminService(catalogue, sysClock)
	ticketSvc := app.NewTicketService(catalogue, sysClock)

	router := transporthttp.NewRouter(staffingSvc, adminSvc, ticketSvc)

	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: parseCSV(corsEnv),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := transporthttp.RequestLogger(corsWrapper.Handler(router), logger)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	logger.Infof("api listening on :%s", port)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("server error")
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Error("server shutdown error")
	}
	logger.Info("server stopped")
}

func seedFromFiles(ctx context.Context, catalogue *memory.Catalogue, dir string) error {
	files := flatfile.NewStore(dir)

	employees, err := files.LoadEmployees()
	if err != nil {
		return err
	}
	for _, e := range employees {
		if err := catalogue.AddEmployee(ctx, e); err != nil {
			return err
		}
	}

	attractions, err := files.LoadAttractions()
	if err != nil {
		return err
	}
	for _, a := range attractions {
		if err := catalogue.AddAttraction(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
