package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/rendyak/karirku/internal/config"
	"github.com/rendyak/karirku/internal/logger"
	"github.com/rendyak/karirku/internal/metrics"
	"github.com/rendyak/karirku/internal/notifier"
	"github.com/rendyak/karirku/internal/repositories"
	"github.com/rendyak/karirku/internal/server"
	"github.com/rendyak/karirku/internal/services"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	users := repositories.NewUsersRepository(dbContext.DB)
	validations := repositories.NewValidationsRepository(dbContext.DB)
	applications := repositories.NewApplicationsRepository(dbContext.DB)
	vacancies := repositories.NewCachedVacancies(repositories.NewVacanciesRepository(dbContext.DB))

	bus := EventBus.New()

	if cfg.Notifier.TelegramToken != "" {
		_, err = notifier.NewTelegram(cfg.Notifier.TelegramToken, cfg.Notifier.ReviewerChatID, bus)
		if err != nil {
			log.Fatalf("can't create reviewer notifier: %v", err)
		}
	}

	authService, err := services.NewAuthService(users)
	if err != nil {
		log.Fatalf("can't create auth service: %v", err)
	}

	workflow, err := services.NewWorkflow(services.TokenPrefixResolver{}, validations,
		applications, vacancies, services.AutoAccept, bus)
	if err != nil {
		log.Fatalf("can't create workflow: %v", err)
	}

	reporter, err := services.NewStatsReporter(vacancies, applications, cfg.Server.StatsSchedule)
	if err != nil {
		log.Fatalf("can't create stats reporter: %v", err)
	}
	defer reporter.Stop()

	srv := server.New(cfg.Server, authService, workflow)
	go srv.Run()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = srv.Stop(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
