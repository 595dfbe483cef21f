package constants

import "github.com/rs/zerolog"

const (
	ConfigFileName = ".env"

	// SQLITE_URL path; the database file is created on first run.
	SqliteURL = "SQLITE_URL"

	// Host the web service binds to.
	HTTPHost = "HTTP_HOST"

	// Port the web service binds to.
	HTTPPort = "HTTP_PORT"

	// Seconds between two polling cycles.
	PollingTime = "POLLING_TIME_SEC"

	// Seconds before an in-flight feed fetch is abandoned.
	RSSTimeout = "RSS_TIMEOUT_SEC"

	// User-Agent header sent on feed fetches.
	UserAgent = "RSS_USER_AGENT"

	// Upper bound on feed checks running at the same time.
	MaxConcurrentChecks = "MAX_CONCURRENT_CHECKS"

	// SMTP relay host and port. The connection is made without implicit TLS.
	SMTPHost = "SMTP_HOST"
	SMTPPort = "SMTP_PORT"

	// Seconds before an SMTP dial or send is abandoned.
	SMTPTimeout = "SMTP_TIMEOUT_SEC"

	// Sender and single recipient of every notification.
	FromEmail = "FROM_EMAIL"
	ToEmail   = "TO_EMAIL"

	//nolint:gosec // False positive.
	// Credentials used against the SMTP relay.
	SMTPAuthUser = "SMTP_AUTH_USER"

	//nolint:gosec // False positive.
	SMTPAuthPassword = "SMTP_AUTH_PASSWORD"

	// Zerolog values from [trace, debug, info, warn, error, fatal, panic].
	LogLevel = "LOG_LEVEL"

	defaultSqliteURL           = "rss-notifier.db"
	defaultHTTPHost            = "0.0.0.0"
	defaultHTTPPort            = 3000
	defaultPollingTime         = 300
	defaultRSSTimeout          = 30
	defaultUserAgent           = ExternalName + "/" + Version
	defaultMaxConcurrentChecks = 64
	defaultSMTPHost            = "localhost"
	defaultSMTPPort            = 25
	defaultSMTPTimeout         = 30
	defaultFromEmail           = ""
	defaultToEmail             = ""
	defaultSMTPAuthUser        = ""
	defaultSMTPAuthPassword    = ""
	defaultLogLevel            = zerolog.InfoLevel
)

func GetDefaultConfigValues() map[string]any {
	return map[string]any{
		SqliteURL:           defaultSqliteURL,
		HTTPHost:            defaultHTTPHost,
		HTTPPort:            defaultHTTPPort,
		PollingTime:         defaultPollingTime,
		RSSTimeout:          defaultRSSTimeout,
		UserAgent:           defaultUserAgent,
		MaxConcurrentChecks: defaultMaxConcurrentChecks,
		SMTPHost:            defaultSMTPHost,
		SMTPPort:            defaultSMTPPort,
		SMTPTimeout:         defaultSMTPTimeout,
		FromEmail:           defaultFromEmail,
		ToEmail:             defaultToEmail,
		SMTPAuthUser:        defaultSMTPAuthUser,
		SMTPAuthPassword:    defaultSMTPAuthPassword,
		LogLevel:            defaultLogLevel.String(),
	}
}
