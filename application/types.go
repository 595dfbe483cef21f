package application

import (
	"rss-notifier/services/api"
	"rss-notifier/services/poller"
	"rss-notifier/utils/databases"

	"github.com/go-co-op/gocron/v2"
)

type Application interface {
	Run()
	Shutdown()
}

type Impl struct {
	scheduler     gocron.Scheduler
	pollerService poller.Service
	apiService    api.Service
	db            databases.SqlConnection
}
