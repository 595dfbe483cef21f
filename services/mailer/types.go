package mailer

import (
	"context"
	"time"

	"rss-notifier/models/entities"
	"rss-notifier/services/fetcher"
)

type Service interface {
	Send(ctx context.Context, feed entities.Feed, item fetcher.Item) error
}

type Impl struct {
	host      string
	port      int
	username  string
	password  string
	timeout   time.Duration
	fromEmail string
	toEmail   string
}
