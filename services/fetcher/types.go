package fetcher

import (
	"context"
	"errors"
	"time"

	"github.com/mmcdole/gofeed"
)

type Service interface {
	Fetch(ctx context.Context, url string) (Item, error)
}

// Item is the normalized newest entry of a feed document. It only lives for
// the duration of one check.
type Item struct {
	Title       string
	Link        string
	Description string
	PubDate     time.Time
}

type Impl struct {
	feedParser *gofeed.Parser
	timeout    time.Duration
}

var (
	ErrEmptyFeed      = errors.New("feed has no items")
	ErrMissingPubDate = errors.New("feed item has no parseable publication date")
	ErrMissingLink    = errors.New("feed item has no link")
	ErrMissingTitle   = errors.New("feed item has no title")
)
