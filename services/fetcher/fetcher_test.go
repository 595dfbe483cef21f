package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rss-notifier/models/constants"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	viper.Set(constants.RSSTimeout, 5)
	viper.Set(constants.UserAgent, "rss-notifier/test")
}

func serveXML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchReturnsNewestItem(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title>
<item>
  <title>Newest post</title>
  <link>https://example.com/new</link>
  <description>Fresh content</description>
  <pubDate>Tue, 10 Jun 2025 09:30:00 +0000</pubDate>
</item>
<item>
  <title>Older post</title>
  <link>https://example.com/old</link>
  <pubDate>Mon, 09 Jun 2025 08:00:00 +0000</pubDate>
</item>
</channel></rss>`)

	item, err := New().Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Newest post", item.Title)
	assert.Equal(t, "https://example.com/new", item.Link)
	assert.Equal(t, "Fresh content", item.Description)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), item.PubDate)
}

func TestFetchDescriptionIsOptional(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title>
<item>
  <title>Post</title>
  <link>https://example.com/post</link>
  <pubDate>Tue, 10 Jun 2025 09:30:00 +0000</pubDate>
</item>
</channel></rss>`)

	item, err := New().Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, item.Description)
}

func TestFetchEmptyFeed(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title></channel></rss>`)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrEmptyFeed)
}

func TestFetchMissingPubDate(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title>
<item>
  <title>Post</title>
  <link>https://example.com/post</link>
</item>
</channel></rss>`)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrMissingPubDate)
}

func TestFetchUnparseablePubDate(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title>
<item>
  <title>Post</title>
  <link>https://example.com/post</link>
  <pubDate>sometime last week</pubDate>
</item>
</channel></rss>`)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrMissingPubDate)
}

func TestFetchMissingLink(t *testing.T) {
	server := serveXML(t, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Blog</title>
<item>
  <title>Post</title>
  <pubDate>Tue, 10 Jun 2025 09:30:00 +0000</pubDate>
</item>
</channel></rss>`)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrMissingLink)
}

func TestFetchNonFeedContent(t *testing.T) {
	server := serveXML(t, `<html><body>not a feed</body></html>`)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, err := New().Fetch(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchUnreachableHost(t *testing.T) {
	_, err := New().Fetch(context.Background(), "http://127.0.0.1:1/feed.xml")
	assert.Error(t, err)
}
