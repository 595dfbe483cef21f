package poller

import (
	"sync"

	"rss-notifier/repositories/feeds"
	"rss-notifier/services/fetcher"
	"rss-notifier/services/mailer"

	"golang.org/x/sync/semaphore"
)

type Service interface {
	CheckAll() error
	CheckAsync(id uint)
}

type Impl struct {
	feedRepo feeds.Repository
	fetcher  fetcher.Service
	notifier mailer.Service

	// sem bounds in-flight checks across cycles and force triggers.
	sem *semaphore.Weighted

	// locks serializes concurrent checks of the same feed id. Entries are
	// reference counted and dropped once the last check of a feed releases,
	// so deleted feeds do not accumulate here.
	mu    sync.Mutex
	locks map[uint]*feedLock
}

type feedLock struct {
	mu   sync.Mutex
	refs int
}
