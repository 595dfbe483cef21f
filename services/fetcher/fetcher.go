package fetcher

import (
	"context"
	"fmt"
	"time"

	"rss-notifier/models/constants"

	"github.com/mmcdole/gofeed"
	"github.com/spf13/viper"
)

func New() *Impl {
	fp := gofeed.NewParser()
	fp.UserAgent = viper.GetString(constants.UserAgent)

	return &Impl{
		feedParser: fp,
		timeout:    time.Duration(viper.GetInt(constants.RSSTimeout)) * time.Second,
	}
}

// Fetch retrieves the feed document and reduces it to its first entry,
// assumed to be the newest one. The entry must carry a publication date, a
// link and a title; the description may be empty.
func (service *Impl) Fetch(ctx context.Context, url string) (Item, error) {
	ctx, cancel := context.WithTimeout(ctx, service.timeout)
	defer cancel()

	feed, err := service.feedParser.ParseURLWithContext(url, ctx)
	if err != nil {
		return Item{}, fmt.Errorf("fetch feed: %w", err)
	}

	if len(feed.Items) == 0 {
		return Item{}, ErrEmptyFeed
	}

	newest := feed.Items[0]
	if newest.PublishedParsed == nil {
		return Item{}, ErrMissingPubDate
	}
	if newest.Link == "" {
		return Item{}, ErrMissingLink
	}
	if newest.Title == "" {
		return Item{}, ErrMissingTitle
	}

	return Item{
		Title:       newest.Title,
		Link:        newest.Link,
		Description: newest.Description,
		PubDate:     newest.PublishedParsed.UTC(),
	}, nil
}
