package api

import (
	"context"
	"time"

	"rss-notifier/repositories/feeds"
	"rss-notifier/services/poller"
	"rss-notifier/utils/databases"

	"github.com/labstack/echo/v4"
)

type Service interface {
	Start() error
	Shutdown(ctx context.Context) error
}

type Impl struct {
	server    *echo.Echo
	feedRepo  feeds.Repository
	poller    poller.Service
	db        databases.SqlConnection
	address   string
	startedAt time.Time
}

type feedRequest struct {
	Name    string `json:"name"`
	FeedURL string `json:"feed_url"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Started string `json:"started"`
}
