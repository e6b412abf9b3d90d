package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecetopal/familytree-backend/internal/api"
	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/config"
	"github.com/ecetopal/familytree-backend/internal/db"
	"github.com/ecetopal/familytree-backend/internal/logger"
	"github.com/ecetopal/familytree-backend/internal/metrics"
	"github.com/ecetopal/familytree-backend/internal/repository/postgres"
	"github.com/ecetopal/familytree-backend/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	repos := postgres.NewRepositories(pool)
	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, 15*time.Minute, 7*24*time.Hour)

	guard := services.NewGuard(repos.FamilyTrees)
	rec := services.NewChangeRecorder(repos.ChangeLogs)

	userSvc := services.NewUserService(repos.Users, tm)
	treeSvc := services.NewTreeService(repos.FamilyTrees, repos.ChangeLogs, guard, rec)
	memberSvc := services.NewMemberService(repos.Members, guard, rec)
	marrySvc := services.NewMarriageService(repos.Marriages, repos.Members, guard, rec)
	recordSvc := services.NewRecordService(repos.Births, repos.Passings, repos.Achievements, repos.Members, guard, rec)
	guestSvc := services.NewGuestService(repos.GuestEditors, repos.Members, guard, tm)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:       cfg,
		TM:        tm,
		UserSvc:   userSvc,
		TreeSvc:   treeSvc,
		MemberSvc: memberSvc,
		MarrySvc:  marrySvc,
		RecordSvc: recordSvc,
		GuestSvc:  guestSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
