package application

import (
	"context"
	"errors"
	"net/http"
	"time"

	"rss-notifier/models/entities"
	feedsRepo "rss-notifier/repositories/feeds"
	"rss-notifier/services/api"
	"rss-notifier/services/fetcher"
	"rss-notifier/services/mailer"
	"rss-notifier/services/poller"
	"rss-notifier/utils/databases"

	"github.com/dustin/go-humanize"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

func New() (*Impl, error) {
	db, errDB := databases.New()
	if errDB != nil {
		return nil, errDB
	}

	errMigration := db.GetDB().AutoMigrate(&entities.Feed{})
	if errMigration != nil {
		return nil, errMigration
	}

	scheduler, errScheduler := gocron.NewScheduler()
	if errScheduler != nil {
		return nil, errScheduler
	}

	// Repositories
	feedRepo := feedsRepo.New(db)

	// Services
	fetcherService := fetcher.New()

	mailerService, errMailer := mailer.New()
	if errMailer != nil {
		return nil, errMailer
	}

	pollerService, errPoller := poller.New(scheduler, feedRepo, fetcherService, mailerService)
	if errPoller != nil {
		return nil, errPoller
	}

	apiService := api.New(feedRepo, pollerService, db)

	return &Impl{
		scheduler:     scheduler,
		pollerService: pollerService,
		apiService:    apiService,
		db:            db,
	}, nil
}

func (app *Impl) Run() {
	app.scheduler.Start()
	for _, job := range app.scheduler.Jobs() {
		scheduledTime, err := job.NextRun()
		if err == nil {
			log.Info().Msgf("%v scheduled %s", job.Name(), humanize.Time(scheduledTime))
		}
	}

	go func() {
		if err := app.apiService.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Web service stopped unexpectedly")
		}
	}()
}

func (app *Impl) Shutdown() {
	if err := app.scheduler.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown scheduler, continuing...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.apiService.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Cannot shutdown web service, continuing...")
	}

	app.db.Shutdown()
	log.Info().Msgf("Application is no longer running")
}
