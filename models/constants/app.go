package constants

const (
	ExternalName = "rss-notifier"
	InternalName = "rss-notifier"
	Version      = "1.0.0"
)
