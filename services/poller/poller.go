package poller

import (
	"context"
	"time"

	"rss-notifier/models/constants"
	"rss-notifier/repositories/feeds"
	"rss-notifier/services/fetcher"
	"rss-notifier/services/mailer"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/sync/semaphore"
)

func New(scheduler gocron.Scheduler, feedRepo feeds.Repository, fetcherService fetcher.Service,
	notifier mailer.Service) (*Impl, error) {
	service := &Impl{
		feedRepo: feedRepo,
		fetcher:  fetcherService,
		notifier: notifier,
		sem:      semaphore.NewWeighted(int64(viper.GetInt(constants.MaxConcurrentChecks))),
		locks:    map[uint]*feedLock{},
	}

	interval := time.Duration(viper.GetInt(constants.PollingTime)) * time.Second
	_, errJob := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if errCycle := service.CheckAll(); errCycle != nil {
				log.Error().Err(errCycle).Msg("Cannot list feeds, skipping this cycle")
			}
		}),
		gocron.WithName("Check feeds"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if errJob != nil {
		return nil, errJob
	}

	return service, nil
}

// CheckAll launches one asynchronous check per subscription and returns as
// soon as all of them are spawned. The only failure it can report is not
// being able to enumerate the subscriptions; per-feed failures stay inside
// their own check.
func (service *Impl) CheckAll() error {
	feedList, err := service.feedRepo.ListFeeds()
	if err != nil {
		return err
	}

	for _, feed := range feedList {
		log.Info().
			Uint(constants.LogFeedID, feed.ID).
			Str(constants.LogFeedName, feed.Name).
			Msg("Spawning feed check")
		service.CheckAsync(feed.ID)
	}
	return nil
}

// CheckAsync runs one feed check in the background and returns immediately.
// Scheduled cycles and force triggers both come through here, so they share
// the concurrency bound and the per-feed serialization.
func (service *Impl) CheckAsync(id uint) {
	go func() {
		if err := service.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer service.sem.Release(1)

		lock := service.lockFeed(id)
		defer service.unlockFeed(id, lock)

		service.check(id)
	}()
}

func (service *Impl) lockFeed(id uint) *feedLock {
	service.mu.Lock()
	lock, found := service.locks[id]
	if !found {
		lock = &feedLock{}
		service.locks[id] = lock
	}
	lock.refs++
	service.mu.Unlock()

	lock.mu.Lock()
	return lock
}

func (service *Impl) unlockFeed(id uint, lock *feedLock) {
	lock.mu.Unlock()

	service.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(service.locks, id)
	}
	service.mu.Unlock()
}

// check runs the full pipeline for one feed: fetch, compare against the
// checkpoint, notify, persist. The subscription is re-read under the feed
// lock so a check queued behind another sees the checkpoint that one wrote.
// Every failure is terminal for this check only: logged with the feed id
// and swallowed.
func (service *Impl) check(id uint) {
	feed, err := service.feedRepo.GetFeed(id)
	if err != nil {
		log.Error().Err(err).Uint(constants.LogFeedID, id).Msg("Cannot read feed, check aborted")
		return
	}

	item, err := service.fetcher.Fetch(context.Background(), feed.FeedURL)
	if err != nil {
		log.Error().Err(err).
			Uint(constants.LogFeedID, feed.ID).
			Str(constants.LogFeedURL, feed.FeedURL).
			Msg("Cannot fetch feed, check aborted")
		return
	}

	if !IsChanged(feed.LastPubDate, item.PubDate) {
		log.Debug().
			Uint(constants.LogFeedID, feed.ID).
			Time(constants.LogPubDate, item.PubDate).
			Msg("Newest item already notified")
		return
	}

	if errSend := service.notifier.Send(context.Background(), feed, item); errSend != nil {
		log.Error().Err(errSend).
			Uint(constants.LogFeedID, feed.ID).
			Msg("Cannot send notification, checkpoint left untouched")
		return
	}

	// The mail already went out; losing this write only means a possible
	// duplicate notification on the next cycle.
	if errUpdate := service.feedRepo.UpdateLastPubDate(feed.ID, item.PubDate); errUpdate != nil {
		log.Error().Err(errUpdate).
			Uint(constants.LogFeedID, feed.ID).
			Time(constants.LogPubDate, item.PubDate).
			Msg("Notification sent but checkpoint not persisted")
	}
}
