package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<link>http://example.com</link>
	<description>Test Description</description>
	<item>
		<title>Test Article 1</title>
		<link>http://example.com/article1</link>
		<description>Article 1 description</description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>http://example.com/article1</guid>
	</item>
	<item>
		<title>Test Article 2</title>
		<link>http://example.com/article2</link>
		<description>Article 2 description</description>
	</item>
</channel>
</rss>`

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "postomat/1.0")
	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "postomat/1.0", gotUA)

	require.Len(t, items, 2)

	assert.Equal(t, "Test Article 1", items[0].Title)
	assert.Equal(t, "http://example.com/article1", items[0].Link)
	assert.Equal(t, "Article 1 description", items[0].Description)
	assert.Equal(t, "http://example.com/article1", items[0].GUID)
	require.NotNil(t, items[0].Published)
	assert.False(t, items[0].Published.IsZero())

	// no guid element, falls back to the link
	assert.Equal(t, "http://example.com/article2", items[1].GUID)
	assert.Nil(t, items[1].Published)
}

func TestFetcher_Fetch_AtomFeed(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Test Atom Feed</title>
	<link href="http://example.com"/>
	<entry>
		<title>Atom Entry 1</title>
		<link href="http://example.com/entry1"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>Entry 1 summary</summary>
	</entry>
</feed>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomContent))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "postomat/1.0")
	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Atom Entry 1", items[0].Title)
	assert.Equal(t, "http://example.com/entry1", items[0].Link)
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", items[0].GUID)
	require.NotNil(t, items[0].Published)
}

func TestFetcher_Fetch_NoGUIDNoLink(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Feed</title>
	<item>
		<title>No GUID Article</title>
		<description>Article without GUID or link</description>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "postomat/1.0")
	items, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Test Feed-No GUID Article", items[0].GUID)
}

func TestFetcher_Fetch_Errors(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := NewFetcher(5*time.Second, "postomat/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
	})

	t.Run("invalid xml", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not xml"))
		}))
		defer server.Close()

		fetcher := NewFetcher(5*time.Second, "postomat/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("too late"))
		}))
		defer server.Close()

		fetcher := NewFetcher(100*time.Millisecond, "postomat/1.0")
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		fetcher := NewFetcher(5*time.Second, "postomat/1.0")
		_, err := fetcher.Fetch(context.Background(), "not-a-url")
		require.Error(t, err)
	})
}
