package entities

import "time"

// Feed is a watched RSS subscription. LastPubDate is the publication date of
// the last item a notification went out for; nil until the first one is sent.
type Feed struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	FeedURL     string     `gorm:"not null" json:"feed_url"`
	LastPubDate *time.Time `json:"last_pub_date"`
}
