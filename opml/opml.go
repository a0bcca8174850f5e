package opml

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
	"ytopml/models"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// FeedURLPrefix is the YouTube channel feed template. The channel id is
// concatenated raw; ids are assumed URL-safe and are not percent-encoded.
const FeedURLPrefix = "https://www.youtube.com/feeds/videos.xml?channel_id="

const unsafeAttrChars = `"&'<>`

// Describe maps a subscription record to its feed descriptor.
func Describe(record models.SubscriptionRecord) models.FeedDescriptor {
	return models.FeedDescriptor{
		ID:      record.ChannelID,
		FeedURL: FeedURLPrefix + record.ChannelID,
		Title:   record.Title,
	}
}

// DescribeAll maps every record to a descriptor, preserving input order.
// No record is filtered out, empty fields included.
func DescribeAll(records []models.SubscriptionRecord) []models.FeedDescriptor {
	return lo.Map(records, func(record models.SubscriptionRecord, _ int) models.FeedDescriptor {
		return Describe(record)
	})
}

// EscapeAttribute makes a string safe to embed in a double-quoted XML
// attribute value by replacing the five unsafe characters with their named
// entity references. Strings without unsafe characters are returned as-is.
func EscapeAttribute(s string) string {
	if !strings.ContainsAny(s, unsafeAttrChars) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("&quot;")
		case '&':
			b.WriteString("&amp;")
		case '\'':
			b.WriteString("&apos;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Outline renders the descriptor as one self-closing OPML outline element.
// The escaped title fills both title and text, and the feed URL fills both
// xmlUrl and htmlUrl, mirroring what feed readers expect from a YouTube
// subscription export.
func Outline(descriptor models.FeedDescriptor) string {
	title := EscapeAttribute(descriptor.Title)
	return fmt.Sprintf(`<outline type="rss" title="%s" text="%s" version="RSS" xmlUrl="%s" htmlUrl="%s"/>`,
		title, title, descriptor.FeedURL, descriptor.FeedURL)
}

// Document assembles the full OPML text: a fixed head with the generation
// timestamp in HTTP-date format, one outline line per descriptor in input
// order, and the closing body/opml tags, joined by newlines.
func Document(descriptors []models.FeedDescriptor, generatedAt time.Time) string {
	lines := []string{
		`<opml version="1.0">`,
		"<head>",
		"  <title>YouTube channels</title>",
		fmt.Sprintf("  <dateCreated>%s</dateCreated>", generatedAt.UTC().Format(http.TimeFormat)),
		"</head>",
		"<body>",
	}

	for _, descriptor := range descriptors {
		lines = append(lines, Outline(descriptor))
	}

	lines = append(lines, "</body></opml>")

	return strings.Join(lines, "\n")
}

// Write assembles the document and writes it to path as UTF-8 text. Any
// existing file is overwritten. The write is synchronous and its error is
// returned to the caller.
func Write(descriptors []models.FeedDescriptor, path string, generatedAt time.Time) error {
	if len(descriptors) == 0 {
		log.WithFields(log.Fields{
			"path": path,
		}).Warn("No subscriptions processed, writing empty OPML body")
	} else {
		log.WithFields(log.Fields{
			"path":     path,
			"outlines": len(descriptors),
		}).Info("Writing OPML document")
	}

	document := Document(descriptors, generatedAt)

	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("error writing OPML document: %w", err)
	}

	return nil
}
