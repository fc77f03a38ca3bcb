package site

import (
	"encoding/xml"
	"os"
	"strings"
	"time"

	"github.com/arumugaprakash-t/blogs/internal/content"
)

// feedItemLimit caps the number of posts in the feed.
const feedItemLimit = 20

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate,omitempty"`
	Category    string `xml:"category,omitempty"`
	Description string `xml:"description"`
}

// WriteFeed writes an RSS 2.0 feed for the newest posts. Posts arrive
// already sorted newest-first.
func WriteFeed(site siteData, posts []*content.Post, outputPath string) error {
	base := strings.TrimSuffix(site.BaseURL, "/")

	channel := rssChannel{
		Title:       site.Title,
		Link:        base + "/",
		Description: site.Description,
	}

	for i, p := range posts {
		if i >= feedItemLimit {
			break
		}
		link := base + "/" + p.Permalink
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Category:    p.Category,
			Description: p.Snippet,
		}
		if !p.Date.IsZero() {
			item.PubDate = p.Date.Format(time.RFC1123Z)
		}
		channel.Items = append(channel.Items, item)
	}

	data, err := xml.MarshalIndent(rssFeed{Version: "2.0", Channel: channel}, "", "  ")
	if err != nil {
		return err
	}
	out := append([]byte(xml.Header), data...)
	return os.WriteFile(outputPath, out, 0o644)
}
