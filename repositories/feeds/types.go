package feeds

import (
	"time"

	"rss-notifier/models/entities"
	"rss-notifier/utils/databases"
)

type Repository interface {
	ListFeeds() ([]entities.Feed, error)
	GetFeed(id uint) (entities.Feed, error)
	CreateFeed(feed *entities.Feed) error
	UpdateFeed(feed entities.Feed) error
	DeleteFeed(id uint) error
	UpdateLastPubDate(id uint, pubDate time.Time) error
	Count() int64
}

type Impl struct {
	db databases.SqlConnection
}
