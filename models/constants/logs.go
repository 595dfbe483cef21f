package constants

import "github.com/rs/zerolog"

const (
	LogFileName      = "fileName"
	LogFeedID        = "feedID"
	LogFeedName      = "feedName"
	LogFeedURL       = "feedURL"
	LogItemTitle     = "itemTitle"
	LogPubDate       = "pubDate"
	LogDatabase      = "database"
	LogHTTPMethod    = "method"
	LogHTTPURI       = "uri"
	LogHTTPStatus    = "status"
	LogHTTPLatency   = "latency"
	LogLevelFallback = zerolog.InfoLevel
)
