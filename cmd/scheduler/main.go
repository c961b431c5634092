package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/course-scheduler/internal/config"
	"github.com/example/course-scheduler/internal/csvio"
	"github.com/example/course-scheduler/internal/feed"
	httptransport "github.com/example/course-scheduler/internal/http"
	"github.com/example/course-scheduler/internal/logging"
	"github.com/example/course-scheduler/internal/scheduler"
)

func main() {
	logger := logging.New(os.Stdout, slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: cfg.FetchTimeout}

	catalogSource := feed.NewCatalogClient(cfg.CatalogURL, client, cfg.CatalogTTL)
	directory, grades, err := buildEnrichmentSources(cfg, client)
	if err != nil {
		logger.Error("failed to build data sources", "error", err)
		os.Exit(1)
	}
	seats := feed.NewSeatsScraper(cfg.SeatsURL, cfg.Term, client)

	service := scheduler.NewServiceWithLogger(catalogSource, directory, grades, seats, logger)
	scheduleHandler := httptransport.NewScheduleHandler(service, cfg.TermStart, cfg.TermEnd, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Schedules:  scheduleHandler,
		Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("schedule API listening", "addr", server.Addr, "term", cfg.Term)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// buildEnrichmentSources wires the instructor directory and grade archive,
// preferring local CSV snapshots over the live APIs when configured.
func buildEnrichmentSources(cfg config.Config, client *http.Client) (scheduler.InstructorDirectory, scheduler.GradeArchive, error) {
	var directory scheduler.InstructorDirectory
	if cfg.InstructorsCSV != "" {
		records, err := csvio.LoadInstructors(cfg.InstructorsCSV)
		if err != nil {
			return nil, nil, err
		}
		directory = csvio.NewInstructorDirectory(records)
	} else {
		live, err := feed.NewInstructorClient(cfg.InstructorURL, client, cfg.DirectoryCacheSize)
		if err != nil {
			return nil, nil, err
		}
		directory = live
	}

	var grades scheduler.GradeArchive
	if cfg.GradesCSV != "" {
		rows, err := csvio.LoadGrades(cfg.GradesCSV)
		if err != nil {
			return nil, nil, err
		}
		grades = csvio.NewGradeArchive(rows)
	} else {
		live, err := feed.NewGradesClient(cfg.GradesURL, client, cfg.GradeCacheSize)
		if err != nil {
			return nil, nil, err
		}
		grades = live
	}

	return directory, grades, nil
}
