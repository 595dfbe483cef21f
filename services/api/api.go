package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rss-notifier/models/constants"
	"rss-notifier/repositories/feeds"
	"rss-notifier/services/poller"
	"rss-notifier/utils/databases"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// New wires the REST surface: subscription CRUD, the force-send trigger and
// a health probe.
func New(feedRepo feeds.Repository, pollerService poller.Service, db databases.SqlConnection) *Impl {
	service := &Impl{
		feedRepo:  feedRepo,
		poller:    pollerService,
		db:        db,
		address:   fmt.Sprintf("%s:%d", viper.GetString(constants.HTTPHost), viper.GetInt(constants.HTTPPort)),
		startedAt: time.Now(),
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())
	server.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	server.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug().
				Str(constants.LogHTTPMethod, v.Method).
				Str(constants.LogHTTPURI, v.URI).
				Int(constants.LogHTTPStatus, v.Status).
				Dur(constants.LogHTTPLatency, v.Latency).
				Msg("Request handled")
			return nil
		},
	}))

	server.GET("/healthz", service.healthz)
	server.GET("/feeds", service.listFeeds)
	server.POST("/feeds", service.createFeed)
	server.GET("/feeds/:id", service.getFeed)
	server.PUT("/feeds/:id", service.updateFeed)
	server.DELETE("/feeds/:id", service.deleteFeed)
	server.POST("/feeds/:id/forcesend", service.forceSend)

	service.server = server
	return service
}

func (service *Impl) Start() error {
	log.Info().Msgf("Web service listening on %s", service.address)
	return service.server.Start(service.address)
}

func (service *Impl) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
