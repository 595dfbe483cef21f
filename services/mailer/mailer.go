package mailer

import (
	"context"
	"fmt"
	"time"

	"rss-notifier/models/constants"
	"rss-notifier/models/entities"
	"rss-notifier/services/fetcher"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/wneessen/go-mail"
)

// New reads the relay configuration and fails fast when it cannot yield a
// usable SMTP client. The relay is spoken to without implicit TLS and
// authenticated with a username/password pair.
func New() (*Impl, error) {
	service := &Impl{
		host:      viper.GetString(constants.SMTPHost),
		port:      viper.GetInt(constants.SMTPPort),
		username:  viper.GetString(constants.SMTPAuthUser),
		password:  viper.GetString(constants.SMTPAuthPassword),
		timeout:   time.Duration(viper.GetInt(constants.SMTPTimeout)) * time.Second,
		fromEmail: viper.GetString(constants.FromEmail),
		toEmail:   viper.GetString(constants.ToEmail),
	}

	if _, err := service.client(); err != nil {
		return nil, fmt.Errorf("build SMTP client: %w", err)
	}

	return service, nil
}

// Send mails one notification for a detected feed change to the configured
// recipient, as a multipart alternative message with a text and an HTML body.
func (service *Impl) Send(ctx context.Context, feed entities.Feed, item fetcher.Item) error {
	log.Info().Uint(constants.LogFeedID, feed.ID).Str(constants.LogItemTitle, item.Title).Msg("Sending mail notification")

	msg, err := service.buildMessage(feed, item)
	if err != nil {
		return err
	}

	client, err := service.client()
	if err != nil {
		return fmt.Errorf("build SMTP client: %w", err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("connect to SMTP server: %w", err)
	}
	defer func() {
		if errClose := client.Close(); errClose != nil {
			log.Warn().Err(errClose).Msg("Failed to close SMTP connection")
		}
	}()

	if err := client.Send(msg); err != nil {
		return fmt.Errorf("send message to SMTP server: %w", err)
	}

	return nil
}

// client builds a fresh SMTP client. Every Send dials its own connection;
// checks for different feeds run concurrently, and a shared connection would
// let one check close the session another one is still sending on.
func (service *Impl) client() (*mail.Client, error) {
	return mail.NewClient(service.host,
		mail.WithPort(service.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(service.username),
		mail.WithPassword(service.password),
		mail.WithTLSPolicy(mail.NoTLS),
		mail.WithTimeout(service.timeout),
	)
}

func (service *Impl) buildMessage(feed entities.Feed, item fetcher.Item) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(fmt.Sprintf("RSS %s", feed.Name), service.fromEmail); err != nil {
		return nil, fmt.Errorf("set message sender: %w", err)
	}
	if err := msg.To(service.toEmail); err != nil {
		return nil, fmt.Errorf("set message recipient: %w", err)
	}

	msg.Subject(item.Title)
	msg.SetBodyString(mail.TypeTextPlain, textBody(item))
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(item))

	return msg, nil
}

func textBody(item fetcher.Item) string {
	return fmt.Sprintf("Original Post: %s - %s\r\n", item.Title, item.Link)
}

// htmlBody appends the raw item description after the link paragraph; feed
// descriptions are usually HTML fragments themselves.
func htmlBody(item fetcher.Item) string {
	return fmt.Sprintf("<p>Original Post: <a href=%q>%s</a></p>%s", item.Link, item.Title, item.Description)
}
