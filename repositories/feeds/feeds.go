package feeds

import (
	"time"

	"rss-notifier/models/entities"
	"rss-notifier/utils/databases"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

// ListFeeds returns every subscription ordered by id.
func (repo *Impl) ListFeeds() ([]entities.Feed, error) {
	var feedList []entities.Feed
	response := repo.db.GetDB().Order("id").Find(&feedList)
	return feedList, response.Error
}

func (repo *Impl) GetFeed(id uint) (entities.Feed, error) {
	var feed entities.Feed
	response := repo.db.GetDB().First(&feed, id)
	return feed, response.Error
}

func (repo *Impl) CreateFeed(feed *entities.Feed) error {
	return repo.db.GetDB().Create(feed).Error
}

// UpdateFeed rewrites the user-editable fields; the checkpoint is only ever
// touched through UpdateLastPubDate.
func (repo *Impl) UpdateFeed(feed entities.Feed) error {
	return repo.db.GetDB().
		Model(&entities.Feed{}).
		Where("id = ?", feed.ID).
		Updates(map[string]any{"name": feed.Name, "feed_url": feed.FeedURL}).
		Error
}

func (repo *Impl) DeleteFeed(id uint) error {
	return repo.db.GetDB().Delete(&entities.Feed{}, id).Error
}

func (repo *Impl) UpdateLastPubDate(id uint, pubDate time.Time) error {
	return repo.db.GetDB().
		Model(&entities.Feed{}).
		Where("id = ?", id).
		Update("last_pub_date", pubDate).
		Error
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.Feed{}).Count(count)

	return *count
}
